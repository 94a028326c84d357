package ui

import (
	"fmt"
	"image"

	"pixloop/pkg/pixel"
)

// Layout splits the surface into a palette toolbar, the canvas and a status
// bar. All values are in logical pixels.
type Layout struct {
	ToolbarH int
	StatusH  int
	Canvas   image.Rectangle
	Status   image.Rectangle
	Swatches []image.Rectangle
}

// Status is what the status bar shows for one frame.
type Status struct {
	FPS    float64
	MouseX int
	MouseY int
	Brush  pixel.Color
	Note   string
}

func ComputeLayout(w, h int, theme Theme, swatches int) Layout {
	toolbarH := theme.ToolbarH
	statusH := theme.StatusH
	if toolbarH+statusH >= h {
		toolbarH, statusH = 0, 0
	}

	canvasH := h - toolbarH - statusH
	if canvasH < 1 {
		canvasH = 1
	}

	layout := Layout{
		ToolbarH: toolbarH,
		StatusH:  statusH,
		Canvas:   image.Rect(0, toolbarH, w, toolbarH+canvasH),
		Status:   image.Rect(0, h-statusH, w, h),
	}
	if toolbarH == 0 {
		return layout
	}

	sw := theme.SwatchW
	if swatches > 0 && sw*swatches > w {
		sw = w / swatches
	}
	if sw < 1 {
		return layout
	}
	for i := 0; i < swatches; i++ {
		layout.Swatches = append(layout.Swatches, image.Rect(i*sw, 0, (i+1)*sw, toolbarH))
	}
	return layout
}

// SwatchAt returns the palette index under (x, y), or -1.
func (l Layout) SwatchAt(x, y int) int {
	p := image.Pt(x, y)
	for i, r := range l.Swatches {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// DrawShell paints the toolbar and status bar around the canvas area. The
// canvas itself is left to the caller.
func DrawShell(s *pixel.Surface, layout Layout, theme Theme, palette []pixel.Color, selected int, st Status) {
	w := s.Width()

	if layout.ToolbarH > 0 {
		s.DrawRect(0, 0, w, layout.ToolbarH, theme.Toolbar)
		for i, r := range layout.Swatches {
			if i >= len(palette) {
				break
			}
			s.DrawRect(r.Min.X+1, r.Min.Y+1, r.Dx()-2, r.Dy()-2, palette[i])
			if i == selected {
				s.StrokeRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), 1, theme.Accent)
			}
		}
	}

	if layout.StatusH == 0 {
		return
	}
	s.DrawRect(layout.Status.Min.X, layout.Status.Min.Y, w, layout.StatusH, theme.StatusBar)
	s.DrawRect(0, layout.Status.Min.Y, w, 1, theme.Border)

	// Brush chip on the right, text on the left.
	chip := layout.StatusH - 6
	if chip > 0 {
		s.DrawRect(w-chip-3, layout.Status.Min.Y+3, chip, chip, st.Brush)
		s.StrokeRect(w-chip-4, layout.Status.Min.Y+2, chip+2, chip+2, 1, theme.Border)
	}
	s.DrawText(2, layout.Status.Min.Y+1, StatusLine(st), theme.StatusText)
}

func StatusLine(st Status) string {
	if st.Note != "" {
		return st.Note
	}
	return fmt.Sprintf("%3.0ffps %d,%d", st.FPS, st.MouseX, st.MouseY)
}
