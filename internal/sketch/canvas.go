// Package sketch holds the drawing state of the demo sketch pad: a canvas
// surface, the active brush, a keyboard cursor and undo/redo history.
package sketch

import (
	"pixloop/pkg/pixel"
)

const DefaultMaxHistory = 200

type Canvas struct {
	surface    *pixel.Surface
	background pixel.Color
	palette    []pixel.Color

	brush   int
	color   pixel.Color
	Size    int
	CursorX int
	CursorY int

	stroking   bool
	lastX      int
	lastY      int
	undo       [][]pixel.Color
	redo       [][]pixel.Color
	maxHistory int
}

func New(w, h int, background pixel.Color, palette []pixel.Color) *Canvas {
	if len(palette) == 0 {
		palette = []pixel.Color{pixel.Black}
	}
	c := &Canvas{
		surface:    pixel.NewSurface(w, h),
		background: background,
		palette:    append([]pixel.Color(nil), palette...),
		color:      palette[0],
		Size:       1,
		CursorX:    w / 2,
		CursorY:    h / 2,
		maxHistory: DefaultMaxHistory,
		undo:       make([][]pixel.Color, 0, 16),
		redo:       make([][]pixel.Color, 0, 16),
	}
	c.surface.Clear(background)
	return c
}

func (c *Canvas) Surface() *pixel.Surface    { return c.surface }
func (c *Canvas) Width() int                 { return c.surface.Width() }
func (c *Canvas) Height() int                { return c.surface.Height() }
func (c *Canvas) Palette() []pixel.Color     { return c.palette }
func (c *Canvas) Background() pixel.Color    { return c.background }
func (c *Canvas) Brush() int                 { return c.brush }
func (c *Canvas) Color() pixel.Color         { return c.color }
func (c *Canvas) UndoDepth() int             { return len(c.undo) }
func (c *Canvas) RedoDepth() int             { return len(c.redo) }
func (c *Canvas) SetMaxHistory(n int)        { c.maxHistory = n }
func (c *Canvas) Stroking() bool             { return c.stroking }
func (c *Canvas) Pixel(x, y int) pixel.Color { return c.surface.Pixel(x, y) }

// SelectBrush picks a palette entry. Out of range indices are ignored.
func (c *Canvas) SelectBrush(i int) bool {
	if i < 0 || i >= len(c.palette) {
		return false
	}
	c.brush = i
	c.color = c.palette[i]
	return true
}

// SetColor replaces the active brush color without touching the palette.
// brush becomes -1 when the color is not a palette entry.
func (c *Canvas) SetColor(col pixel.Color) {
	c.color = col
	c.brush = -1
	for i, p := range c.palette {
		if p == col {
			c.brush = i
			break
		}
	}
}

// BeginStroke starts a continuous paint operation at (x, y). The canvas is
// snapshotted once per stroke so a drag undoes as one step.
func (c *Canvas) BeginStroke(x, y int) {
	if c.stroking {
		return
	}
	c.pushUndo()
	c.stroking = true
	c.lastX, c.lastY = x, y
}

func (c *Canvas) EndStroke() { c.stroking = false }

// StrokeTo paints from the previous stroke point to (x, y). Mouse samples
// arrive once per frame so consecutive points are joined with a line.
func (c *Canvas) StrokeTo(x, y int, erase bool) {
	if !c.stroking {
		c.BeginStroke(x, y)
	}
	col := c.color
	if erase {
		col = c.background
	}
	c.line(c.lastX, c.lastY, x, y, col)
	c.lastX, c.lastY = x, y
}

// MoveCursor shifts the keyboard cursor, clamped to the canvas.
func (c *Canvas) MoveCursor(dx, dy int) {
	c.CursorX = clamp(c.CursorX+dx, 0, c.Width()-1)
	c.CursorY = clamp(c.CursorY+dy, 0, c.Height()-1)
}

// Stamp paints one brush dab at the cursor as its own undo step.
func (c *Canvas) Stamp() {
	c.pushUndo()
	c.dab(c.CursorX, c.CursorY, c.color)
}

func (c *Canvas) Clear() {
	c.pushUndo()
	c.surface.Clear(c.background)
}

func (c *Canvas) Undo() bool {
	if len(c.undo) == 0 {
		return false
	}
	last := c.undo[len(c.undo)-1]
	c.undo = c.undo[:len(c.undo)-1]
	c.redo = append(c.redo, c.surface.Snapshot())
	c.surface.Restore(last)
	c.stroking = false
	return true
}

func (c *Canvas) Redo() bool {
	if len(c.redo) == 0 {
		return false
	}
	last := c.redo[len(c.redo)-1]
	c.redo = c.redo[:len(c.redo)-1]
	c.undo = append(c.undo, c.surface.Snapshot())
	c.surface.Restore(last)
	c.stroking = false
	return true
}

func (c *Canvas) pushUndo() {
	c.undo = append(c.undo, c.surface.Snapshot())
	if c.maxHistory > 0 && len(c.undo) > c.maxHistory {
		c.undo = c.undo[1:]
	}
	c.redo = c.redo[:0]
}

func (c *Canvas) dab(x, y int, col pixel.Color) {
	size := c.Size
	if size < 1 {
		size = 1
	}
	off := (size - 1) / 2
	c.surface.DrawRect(x-off, y-off, size, size, col)
}

// line walks from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *Canvas) line(x0, y0, x1, y1 int, col pixel.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy
	for {
		c.dab(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
