// Package app is the pixloop sketch pad: a small paint program driven by the
// engine's frame loop.
package app

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/sqweek/dialog"
	imgclip "golang.design/x/clipboard"
	"golang.org/x/image/bmp"

	"pixloop/internal/sketch"
	"pixloop/internal/ui"
	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
)

const noteSeconds = 2.0

var ErrNoPath = errors.New("no file selected")

// Clipboard is the text clipboard used for copying and pasting colors.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// NoClipboard refuses every clipboard operation. Replays use it so that the
// host clipboard cannot leak into a verified run.
type NoClipboard struct{}

func (NoClipboard) ReadAll() (string, error) { return "", errors.New("clipboard disabled") }
func (NoClipboard) WriteAll(string) error    { return errors.New("clipboard disabled") }

// ImageClipboard receives the canvas as PNG bytes.
type ImageClipboard interface {
	WriteImage(png []byte) error
}

type systemImageClipboard struct {
	once sync.Once
	err  error
}

func (c *systemImageClipboard) WriteImage(data []byte) error {
	c.once.Do(func() { c.err = imgclip.Init() })
	if c.err != nil {
		return c.err
	}
	imgclip.Write(imgclip.FmtImage, data)
	return nil
}

func saveDialog() (string, error) {
	return dialog.File().Filter("PNG image", "png").Filter("Bitmap image", "bmp").Title("Save sketch").Save()
}

// App implements engine.Game.
type App struct {
	Theme     ui.Theme
	Clipboard Clipboard
	// Images is used by Ctrl+Shift+C. A nil Images disables image copy.
	Images ImageClipboard
	// SavePath asks for a screenshot destination. A nil SavePath disables
	// screenshots.
	SavePath func() (string, error)

	palette []pixel.Color
	canvas  *sketch.Canvas
	layout  ui.Layout
	log     *log.Logger

	fps      float64
	note     string
	noteLeft float64
	blink    float64
}

func New(palette []pixel.Color) *App {
	if len(palette) == 0 {
		palette = []pixel.Color{pixel.Black, pixel.Red, pixel.Green, pixel.Blue}
	}
	return &App{
		Theme:     ui.DefaultTheme(),
		Clipboard: systemClipboard{},
		Images:    &systemImageClipboard{},
		SavePath:  saveDialog,
		palette:   palette,
	}
}

func (a *App) Canvas() *sketch.Canvas { return a.canvas }
func (a *App) Layout() ui.Layout      { return a.layout }
func (a *App) Note() string           { return a.note }

func (a *App) Create(e *engine.Engine) error {
	a.log = e.Logger().With("component", "sketch")
	a.layout = ui.ComputeLayout(e.Width(), e.Height(), a.Theme, len(a.palette))
	if a.layout.Canvas.Empty() {
		return fmt.Errorf("surface %dx%d leaves no room for a canvas", e.Width(), e.Height())
	}
	a.canvas = sketch.New(a.layout.Canvas.Dx(), a.layout.Canvas.Dy(), a.Theme.Canvas, a.palette)
	a.log.Debug("canvas ready", "width", a.canvas.Width(), "height", a.canvas.Height(), "palette", len(a.palette))
	return nil
}

func (a *App) Update(e *engine.Engine, elapsed float64) error {
	in := e.Input()
	a.tick(elapsed)

	if in.Key(input.KeyEscape).Pressed {
		return engine.Stop
	}

	if in.Ctrl() {
		a.handleShortcuts(in)
	} else {
		a.handleKeys(in)
	}
	a.handleMouse(in)

	a.render(e)
	return nil
}

func (a *App) Destroy(e *engine.Engine) {
	if a.log == nil || a.canvas == nil {
		return
	}
	a.log.Debug("sketch closed", "undo", a.canvas.UndoDepth(), "frames", e.Stats().Frames)
}

func (a *App) tick(elapsed float64) {
	if elapsed > 0 {
		inst := 1 / elapsed
		if a.fps == 0 {
			a.fps = inst
		} else {
			a.fps = a.fps*0.9 + inst*0.1
		}
	}
	if a.noteLeft > 0 {
		a.noteLeft -= elapsed
		if a.noteLeft <= 0 {
			a.note = ""
		}
	}
	a.blink += elapsed
	if a.blink >= 1 {
		a.blink -= 1
	}
}

func (a *App) setNote(format string, args ...any) {
	a.note = fmt.Sprintf(format, args...)
	a.noteLeft = noteSeconds
}

func (a *App) handleShortcuts(in *input.State) {
	switch {
	case in.Key(input.KeyZ).Pressed:
		if a.canvas.Undo() {
			a.setNote("undo")
		}
	case in.Key(input.KeyY).Pressed:
		if a.canvas.Redo() {
			a.setNote("redo")
		}
	case in.Key(input.KeyC).Pressed && in.Shift():
		a.copyImage()
	case in.Key(input.KeyC).Pressed:
		hex := a.canvas.Color().Hex()
		if err := a.Clipboard.WriteAll(hex); err != nil {
			a.log.Warn("copy failed", "err", err)
			a.setNote("copy failed")
			return
		}
		a.setNote("copied %s", hex)
	case in.Key(input.KeyV).Pressed:
		text, err := a.Clipboard.ReadAll()
		if err != nil {
			a.log.Warn("paste failed", "err", err)
			a.setNote("paste failed")
			return
		}
		c, err := pixel.ParseHex(strings.TrimSpace(text))
		if err != nil {
			a.setNote("not a color")
			return
		}
		a.canvas.SetColor(c)
		a.setNote("brush %s", c.Hex())
	}
}

func (a *App) handleKeys(in *input.State) {
	for i, k := range []input.Key{input.Key1, input.Key2, input.Key3, input.Key4, input.Key5,
		input.Key6, input.Key7, input.Key8, input.Key9} {
		if in.Key(k).Pressed && a.canvas.SelectBrush(i) {
			a.setNote("brush %d", i+1)
		}
	}
	if in.Key(input.KeyC).Pressed {
		a.canvas.Clear()
		a.setNote("cleared")
	}
	if in.Key(input.KeyEquals).Pressed && a.canvas.Size < 8 {
		a.canvas.Size++
	}
	if in.Key(input.KeyMinus).Pressed && a.canvas.Size > 1 {
		a.canvas.Size--
	}

	step := 1
	if in.Shift() {
		step = 4
	}
	if in.Key(input.KeyLeft).Pressed {
		a.canvas.MoveCursor(-step, 0)
	}
	if in.Key(input.KeyRight).Pressed {
		a.canvas.MoveCursor(step, 0)
	}
	if in.Key(input.KeyUp).Pressed {
		a.canvas.MoveCursor(0, -step)
	}
	if in.Key(input.KeyDown).Pressed {
		a.canvas.MoveCursor(0, step)
	}
	if in.Key(input.KeySpace).Pressed {
		a.canvas.Stamp()
	}
	if in.Key(input.KeyF12).Pressed {
		a.screenshot()
	}
}

func (a *App) handleMouse(in *input.State) {
	mx, my := in.Mouse()
	left := in.Button(input.ButtonLeft)
	right := in.Button(input.ButtonRight)

	if left.Pressed {
		if i := a.layout.SwatchAt(mx, my); i >= 0 {
			a.canvas.SelectBrush(i)
			return
		}
	}

	cx, cy := mx-a.layout.Canvas.Min.X, my-a.layout.Canvas.Min.Y
	inside := cx >= 0 && cy >= 0 && cx < a.canvas.Width() && cy < a.canvas.Height()
	switch {
	case left.Held && (a.canvas.Stroking() || (left.Pressed && inside)):
		a.canvas.StrokeTo(cx, cy, false)
	case right.Held && (a.canvas.Stroking() || (right.Pressed && inside)):
		a.canvas.StrokeTo(cx, cy, true)
	default:
		a.canvas.EndStroke()
	}
}

func (a *App) render(e *engine.Engine) {
	s := e.Surface()
	s.Clear(a.Theme.Background)
	origin := a.layout.Canvas.Min
	s.Blit(a.canvas.Surface(), origin.X, origin.Y)

	if a.blink < 0.5 {
		x, y := origin.X+a.canvas.CursorX, origin.Y+a.canvas.CursorY
		s.Draw(x-2, y, a.Theme.Cursor)
		s.Draw(x+2, y, a.Theme.Cursor)
		s.Draw(x, y-2, a.Theme.Cursor)
		s.Draw(x, y+2, a.Theme.Cursor)
	}

	mx, my := e.Mouse()
	ui.DrawShell(s, a.layout, a.Theme, a.palette, a.canvas.Brush(), ui.Status{
		FPS:    a.fps,
		MouseX: mx - origin.X,
		MouseY: my - origin.Y,
		Brush:  a.canvas.Color(),
		Note:   a.note,
	})
}

func (a *App) screenshot() {
	if a.SavePath == nil {
		return
	}
	path, err := a.SavePath()
	if err == nil && path == "" {
		err = ErrNoPath
	}
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			a.log.Warn("screenshot path", "err", err)
		}
		a.setNote("not saved")
		return
	}
	if err := SaveImage(path, a.canvas.Surface()); err != nil {
		a.log.Error("screenshot failed", "path", path, "err", err)
		a.setNote("save failed")
		return
	}
	a.log.Info("screenshot saved", "path", path)
	a.setNote("saved %s", filepath.Base(path))
}

func (a *App) copyImage() {
	if a.Images == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, a.canvas.Surface().Image()); err != nil {
		a.log.Error("encode canvas", "err", err)
		return
	}
	if err := a.Images.WriteImage(buf.Bytes()); err != nil {
		a.log.Warn("image copy failed", "err", err)
		a.setNote("copy failed")
		return
	}
	a.setNote("copied image")
}

// SaveImage writes s as BMP when path ends in .bmp and as PNG otherwise.
func SaveImage(path string, s *pixel.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	img := s.Image()
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode image: %w", err)
	}
	return f.Close()
}
