package main

import (
	"testing"

	"pixloop/internal/app"
	"pixloop/pkg/pixel"
)

func TestReplayAppHasNoHostSideEffects(t *testing.T) {
	a := replayApp([]pixel.Color{pixel.Black})
	if _, ok := a.Clipboard.(app.NoClipboard); !ok {
		t.Fatalf("expected disabled clipboard, got %T", a.Clipboard)
	}
	if a.Images != nil {
		t.Fatal("image clipboard must be disabled during replay")
	}
	if a.SavePath != nil {
		t.Fatal("screenshot dialog must be disabled during replay")
	}
}
