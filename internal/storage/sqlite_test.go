package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.sand/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".sand", "runs.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Scene: "hourglass", GridSize: 40, Ticks: 300, Strokes: 2, CellsPainted: 18, Sand: 210, Solid: 76},
		{Scene: "dam", GridSize: 32, Ticks: 90, Water: 140, Solid: 21, Faults: 1, User: "grain", Duration: 1500 * time.Millisecond},
		{Scene: "hourglass", GridSize: 40, Ticks: 1200, Sand: 210, Solid: 76},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveRun() returned id %d", id)
		}
	}

	n, err := store.RunCount()
	if err != nil || n != 3 {
		t.Fatalf("RunCount() = %d, %v; expected 3", n, err)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(recent))
	}
	// Same-second inserts fall back to id order
	if recent[0].Ticks != 1200 || recent[1].Scene != "dam" {
		t.Errorf("unexpected order: %+v", recent)
	}

	dam := recent[1]
	if dam.User != "grain" || dam.Faults != 1 || dam.Water != 140 || dam.Duration != 1500*time.Millisecond {
		t.Errorf("fields did not round trip: %+v", dam)
	}
	if dam.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestRunsForSceneAndStats(t *testing.T) {
	store := openTemp(t)

	for _, ticks := range []uint64{100, 400, 250} {
		if _, err := store.SaveRun(Run{Scene: "basin", GridSize: 20, Ticks: ticks, CellsPainted: 10}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveRun(Run{Scene: "mixed", GridSize: 20, Ticks: 5}); err != nil {
		t.Fatal(err)
	}

	basin, err := store.RunsForScene("basin", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(basin) != 3 {
		t.Errorf("expected 3 basin runs, got %d", len(basin))
	}

	stats, err := store.Stats("basin")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 3 || stats.TotalTicks != 750 || stats.MaxTicks != 400 || stats.Painted != 30 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	if _, err := store.Stats("empty"); !errors.Is(err, ErrNoRuns) {
		t.Errorf("expected ErrNoRuns, got %v", err)
	}

	if err := store.ClearRuns("basin"); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.RunCount(); n != 1 {
		t.Errorf("after ClearRuns expected 1 run, got %d", n)
	}
}

func TestRecentRunsEmpty(t *testing.T) {
	store := openTemp(t)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
