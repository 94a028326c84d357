package sketch

import (
	"testing"

	"pixloop/pkg/pixel"
)

var testPalette = []pixel.Color{pixel.Black, pixel.Red, pixel.Blue}

func TestStrokeJoinsSamples(t *testing.T) {
	c := New(20, 10, pixel.White, testPalette)
	c.SelectBrush(1)
	c.BeginStroke(2, 2)
	c.StrokeTo(2, 2, false)
	c.StrokeTo(10, 2, false)
	c.EndStroke()

	for x := 2; x <= 10; x++ {
		if got := c.Pixel(x, 2); got != pixel.Red {
			t.Fatalf("expected red at %d,2, got %v", x, got)
		}
	}
	if got := c.Pixel(11, 2); got != pixel.White {
		t.Fatalf("stroke overshot: %v", got)
	}
	if c.UndoDepth() != 1 {
		t.Fatalf("expected one undo step per stroke, got %d", c.UndoDepth())
	}
}

func TestEraseUsesBackground(t *testing.T) {
	c := New(4, 4, pixel.White, testPalette)
	c.Stamp()
	c.BeginStroke(c.CursorX, c.CursorY)
	c.StrokeTo(c.CursorX, c.CursorY, true)
	c.EndStroke()
	if got := c.Pixel(2, 2); got != pixel.White {
		t.Fatalf("expected erased pixel, got %v", got)
	}
}

func TestUndoRedo(t *testing.T) {
	c := New(4, 4, pixel.White, testPalette)
	c.SelectBrush(2)
	c.Stamp()
	if got := c.Pixel(2, 2); got != pixel.Blue {
		t.Fatalf("expected stamp, got %v", got)
	}
	if !c.Undo() {
		t.Fatal("undo failed")
	}
	if got := c.Pixel(2, 2); got != pixel.White {
		t.Fatalf("expected undone pixel, got %v", got)
	}
	if !c.Redo() {
		t.Fatal("redo failed")
	}
	if got := c.Pixel(2, 2); got != pixel.Blue {
		t.Fatalf("expected redone pixel, got %v", got)
	}
	if c.Redo() {
		t.Fatal("redo with empty history should fail")
	}

	c.Undo()
	c.Clear()
	if c.RedoDepth() != 0 {
		t.Fatal("a new edit must drop the redo history")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	c := New(2, 2, pixel.White, testPalette)
	c.SetMaxHistory(3)
	for i := 0; i < 10; i++ {
		c.Stamp()
	}
	if c.UndoDepth() != 3 {
		t.Fatalf("expected history capped at 3, got %d", c.UndoDepth())
	}
}

func TestCursorAndBrushSelection(t *testing.T) {
	c := New(5, 5, pixel.White, testPalette)
	c.MoveCursor(-10, 10)
	if c.CursorX != 0 || c.CursorY != 4 {
		t.Fatalf("cursor not clamped: %d,%d", c.CursorX, c.CursorY)
	}
	if c.SelectBrush(7) {
		t.Fatal("out of range brush accepted")
	}
	c.SetColor(pixel.Blue)
	if c.Brush() != 2 {
		t.Fatalf("expected palette match, got %d", c.Brush())
	}
	c.SetColor(pixel.RGBA(9, 9, 9, 255))
	if c.Brush() != -1 || c.Color() != pixel.RGBA(9, 9, 9, 255) {
		t.Fatalf("unexpected custom color state %d %v", c.Brush(), c.Color())
	}
}
