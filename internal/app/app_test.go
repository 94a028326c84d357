package app

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/bmp"

	"pixloop/pkg/engine"
	"pixloop/pkg/input"
	"pixloop/pkg/pixel"
	"pixloop/pkg/platform/headless"
)

var testPalette = []pixel.Color{pixel.Black, pixel.Red, pixel.Blue}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) ReadAll() (string, error) { return c.text, c.err }
func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeImages struct{ data []byte }

func (c *fakeImages) WriteImage(data []byte) error {
	c.data = data
	return nil
}

func keys(k ...input.Key) headless.Frame { return headless.Frame{Keys: k} }

func run(t *testing.T, a *App, script ...headless.Frame) *engine.Engine {
	t.Helper()
	cfg := engine.Config{Title: "sketch", Width: 160, Height: 120, ScaleX: 1, ScaleY: 1}
	e, err := engine.New(cfg, headless.New(script...), engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := e.Start(a); err != nil {
		t.Fatalf("start: %v", err)
	}
	return e
}

func newApp() *App {
	a := New(testPalette)
	a.Clipboard = &fakeClipboard{}
	a.Images = nil
	a.SavePath = nil
	return a
}

func TestMouseDragPaintsLine(t *testing.T) {
	a := newApp()
	left := input.ButtonLeft.Mask()
	e := run(t, a,
		headless.Frame{Mouse: engine.Mouse{Buttons: left, X: 20, Y: 40}},
		headless.Frame{Mouse: engine.Mouse{Buttons: left, X: 30, Y: 40}},
		headless.Frame{Mouse: engine.Mouse{X: 30, Y: 40}},
		keys(input.KeyEscape),
	)

	if e.ExitReason() != engine.ExitStopped {
		t.Fatalf("expected stop, got %v", e.ExitReason())
	}
	y := 40 - a.Layout().Canvas.Min.Y
	for x := 20; x <= 30; x++ {
		if got := a.Canvas().Pixel(x, y); got != pixel.Black {
			t.Fatalf("expected painted pixel at %d,%d, got %v", x, y, got)
		}
	}
	if a.Canvas().UndoDepth() != 1 {
		t.Fatalf("expected a single undo step, got %d", a.Canvas().UndoDepth())
	}
	if a.Canvas().Stroking() {
		t.Fatal("stroke should end on release")
	}
}

func TestSwatchClickSelectsBrush(t *testing.T) {
	a := newApp()
	sw := a.Theme.SwatchW
	run(t, a,
		headless.Frame{Mouse: engine.Mouse{Buttons: input.ButtonLeft.Mask(), X: sw*2 + 2, Y: 2}},
		keys(input.KeyEscape),
	)
	if a.Canvas().Brush() != 2 || a.Canvas().Color() != pixel.Blue {
		t.Fatalf("expected blue brush, got %d %v", a.Canvas().Brush(), a.Canvas().Color())
	}
	if a.Canvas().UndoDepth() != 0 {
		t.Fatal("clicking a swatch must not paint")
	}
}

func TestKeyboardStampClearUndo(t *testing.T) {
	a := newApp()
	run(t, a,
		keys(input.Key2),
		keys(input.KeySpace),
		keys(),
		keys(input.KeyC),
		keys(),
		keys(input.KeyLeftCtrl, input.KeyZ),
		keys(input.KeyEscape),
	)
	c := a.Canvas()
	if got := c.Pixel(c.CursorX, c.CursorY); got != pixel.Red {
		t.Fatalf("expected undo to restore the stamp, got %v", got)
	}
	if c.RedoDepth() != 1 {
		t.Fatalf("expected one redo step, got %d", c.RedoDepth())
	}
}

func TestClipboardCopyPaste(t *testing.T) {
	a := newApp()
	clip := &fakeClipboard{text: " #0000ff\n"}
	a.Clipboard = clip
	run(t, a,
		keys(input.KeyLeftCtrl, input.KeyV),
		keys(input.KeyLeftCtrl),
		keys(input.KeyLeftCtrl, input.KeyC),
		keys(input.KeyEscape),
	)
	if a.Canvas().Color() != pixel.Blue {
		t.Fatalf("expected pasted blue, got %v", a.Canvas().Color())
	}
	if clip.text != "#0000ffff" {
		t.Fatalf("expected copied hex, got %q", clip.text)
	}
}

func TestClipboardFailureIsReported(t *testing.T) {
	a := newApp()
	a.Clipboard = &fakeClipboard{err: errors.New("no display")}
	run(t, a, keys(input.KeyLeftCtrl, input.KeyV))
	if a.Note() != "paste failed" {
		t.Fatalf("unexpected note %q", a.Note())
	}
	if a.Canvas().Color() != pixel.Black {
		t.Fatal("brush changed after failed paste")
	}
}

func TestScreenshot(t *testing.T) {
	a := newApp()
	path := filepath.Join(t.TempDir(), "shot.png")
	a.SavePath = func() (string, error) { return path, nil }
	run(t, a, keys(input.KeyF12), keys(input.KeyEscape))

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("screenshot missing: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != a.Canvas().Width() || img.Bounds().Dy() != a.Canvas().Height() {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}
}

func TestSaveImageBMP(t *testing.T) {
	s := pixel.NewSurface(3, 2)
	s.Clear(pixel.Red)
	path := filepath.Join(t.TempDir(), "shot.BMP")
	if err := SaveImage(path, s); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 0xFF || g != 0 || b != 0 {
		t.Fatalf("unexpected pixel %d %d %d", r, g, b)
	}
}

func TestStatusBarIsPresented(t *testing.T) {
	a := newApp()
	b := headless.New(keys(), keys(input.KeyEscape))
	cfg := engine.Config{Title: "sketch", Width: 160, Height: 120, ScaleX: 1, ScaleY: 1}
	e, err := engine.New(cfg, b, engine.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Start(a); err != nil {
		t.Fatal(err)
	}

	off := a.Layout().Status.Min.Y * 160 * 4
	px := b.LastFrame()[off : off+4]
	border := a.Theme.Border
	if px[0] != border.R() || px[1] != border.G() || px[2] != border.B() {
		t.Fatalf("expected status border in presented frame, got %v", px)
	}
}

func TestCopyCanvasImage(t *testing.T) {
	a := newApp()
	images := &fakeImages{}
	a.Images = images
	clip := &fakeClipboard{}
	a.Clipboard = clip
	run(t, a, keys(input.KeyLeftCtrl, input.KeyLeftShift, input.KeyC), keys(input.KeyEscape))

	if clip.text != "" {
		t.Fatalf("shifted copy must not copy the brush color, got %q", clip.text)
	}
	img, err := png.Decode(bytes.NewReader(images.data))
	if err != nil {
		t.Fatalf("decode copied image: %v", err)
	}
	if img.Bounds().Dx() != a.Canvas().Width() {
		t.Fatalf("unexpected copied width %d", img.Bounds().Dx())
	}
}

func TestDestroyWithoutCanvas(t *testing.T) {
	a := newApp()
	a.log = log.New(io.Discard)
	a.Destroy(nil)
}
