package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndListSessions(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	base := time.UnixMilli(1_700_000_000_000)
	for i, exit := range []string{"closed", "failed", "stopped"} {
		_, err := store.SaveSession(Session{
			Backend:   "desktop",
			Title:     "sketch",
			Frames:    uint64(100 * (i + 1)),
			Duration:  time.Duration(i+1) * time.Second,
			AvgFPS:    100,
			Exit:      exit,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].Exit != "stopped" || got[0].Frames != 300 || got[0].Duration != 3*time.Second {
		t.Fatalf("unexpected newest session %+v", got[0])
	}
	if !got[1].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected created time %v", got[1].CreatedAt)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatal(err)
	}
	got, err = store.RecentSessions(10)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty history, got %d (%v)", len(got), err)
	}
}

func TestInMemoryStore(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	id, err := store.SaveSession(Session{Backend: "terminal", Title: "t", Exit: "closed"})
	if err != nil || id != 1 {
		t.Fatalf("unexpected id %d (%v)", id, err)
	}
}
