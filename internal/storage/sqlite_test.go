package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(blocks.Replay{Seed: 1, Width: 10, Height: 20, Games: 1})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got == nil {
		t.Fatal("replay lost after reopen")
	}
}

func TestSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)

	rec := blocks.NewRecorder(77, 10, 20)
	e := blocks.NewEngine(blocks.WithSource(blocks.NewRandomSource(77, blocks.DefaultPalette())))
	script := []blocks.Stimulus{
		blocks.Move(blocks.CommandLeft),
		blocks.Move(blocks.CommandRotate),
		blocks.Tick(),
		blocks.Move(blocks.CommandDown),
		blocks.ResetGame(),
		blocks.Move(blocks.CommandRight),
	}
	for range 50 {
		for _, s := range script {
			rec.Observe(e.Apply(s))
		}
	}
	want := rec.Replay()

	id, err := store.SaveReplay(want)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated ID")
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got == nil {
		t.Fatal("Replay() returned nil")
	}
	if got.Seed != want.Seed || got.Width != want.Width || got.Height != want.Height {
		t.Errorf("got header %d %dx%d, expected %d %dx%d", got.Seed, got.Width, got.Height, want.Seed, want.Width, want.Height)
	}
	if got.Games != want.Games {
		t.Errorf("got %d games, expected %d", got.Games, want.Games)
	}
	if len(got.Stimuli) != len(want.Stimuli) {
		t.Fatalf("got %d stimuli, expected %d", len(got.Stimuli), len(want.Stimuli))
	}
	for i := range want.Stimuli {
		if got.Stimuli[i] != want.Stimuli[i] {
			t.Fatalf("stimulus %d: got %s, expected %s", i, got.Stimuli[i], want.Stimuli[i])
		}
	}
	if !got.CreatedAt.Equal(want.CreatedAt.UTC()) {
		t.Errorf("got created %v, expected %v", got.CreatedAt, want.CreatedAt)
	}

	// The stored log reproduces the live game.
	if got.Play(blocks.DefaultPalette()).Score() != e.Score() {
		t.Errorf("replayed score differs from live score %d", e.Score())
	}
}

func TestReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Replay("missing")
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown ID, got %+v", got)
	}
}

func TestRecentReplaysNewestFirst(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := store.SaveReplay(blocks.Replay{
			ID:        id,
			Seed:      int64(i),
			Width:     10,
			Height:    20,
			Score:     (3 - i) * 10,
			Games:     1,
			Stimuli:   []blocks.Stimulus{blocks.Tick()},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveReplay(%s) failed: %v", id, err)
		}
	}

	list, err := store.RecentReplays(2)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d entries, expected 2", len(list))
	}
	if list[0].ID != "c" || list[1].ID != "b" {
		t.Errorf("got order %s, %s, expected c, b", list[0].ID, list[1].ID)
	}
	if list[0].Stimuli != 1 {
		t.Errorf("got %d stimuli, expected 1", list[0].Stimuli)
	}
	if !list[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("got created %v, expected %v", list[0].CreatedAt, base.Add(2*time.Minute))
	}
}

func TestSaveReplayDuplicateID(t *testing.T) {
	store := openTestStore(t)
	r := blocks.Replay{ID: "same", Width: 10, Height: 20, Games: 1}

	if _, err := store.SaveReplay(r); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if _, err := store.SaveReplay(r); err == nil {
		t.Error("expected error for duplicate ID")
	}
}

func TestDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(blocks.Replay{Width: 10, Height: 20, Games: 1, Stimuli: []blocks.Stimulus{blocks.Tick(), blocks.ResetGame()}})
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	deleted, err := store.DeleteReplay(id)
	if err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if !deleted {
		t.Error("expected replay to be deleted")
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got != nil {
		t.Error("replay still present after delete")
	}

	deleted, err = store.DeleteReplay(id)
	if err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if deleted {
		t.Error("second delete should report nothing deleted")
	}
}
