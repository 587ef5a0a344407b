package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/jumper/internal/config"
	"github.com/vovakirdan/jumper/internal/core"
	"github.com/vovakirdan/jumper/internal/replay"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(seed int64, frames ...core.InputFrame) replay.Run {
	rec := replay.NewRecorder(core.RuntimeConfig{TickRate: 60, Seed: seed}, config.DefaultJumperConfig())
	for _, f := range frames {
		rec.Record(f, core.StepResult{})
	}
	return rec.Run()
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

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTemp(t)

	run := sampleRun(42,
		core.NewInputFrame(core.ActionLeft),
		core.NewInputFrame(),
		core.NewInputFrame(core.ActionRight, core.ActionRestart),
	)
	run.Config.Physics.Gravity = 0.75
	staged := config.DefaultJumperConfig()
	staged.Spawn.PlatformCount = 4
	run.Stages = []replay.Stage{{Frame: 2, Config: staged}}

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	if got.Seed != 42 || got.TickRate != 60 || got.Game != "jumper" {
		t.Errorf("header mismatch: %+v", got)
	}
	if string(got.Frames) != string(run.Frames) {
		t.Errorf("frames = %v, want %v", got.Frames, run.Frames)
	}
	if got.Config.Physics.Gravity != 0.75 {
		t.Errorf("gravity = %v, want 0.75", got.Config.Physics.Gravity)
	}
	if len(got.Stages) != 1 || got.Stages[0].Config.Spawn.PlatformCount != 4 {
		t.Errorf("stages = %+v", got.Stages)
	}
}

func TestStoreRunsNewestFirst(t *testing.T) {
	store := openTemp(t)

	for seed := int64(1); seed <= 3; seed++ {
		if _, err := store.SaveRun(sampleRun(seed, core.NewInputFrame())); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.Runs(2)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Seed != 3 || runs[1].Seed != 2 {
		t.Errorf("Expected seeds 3,2 got %d,%d", runs[0].Seed, runs[1].Seed)
	}
	if runs[0].Frames != 1 || runs[0].Lives != 1 {
		t.Errorf("Unexpected entry: %+v", runs[0])
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreEmptyRun(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(sampleRun(9))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}
	if len(got.Frames) != 0 {
		t.Errorf("Expected no frames, got %d", len(got.Frames))
	}
}

func TestStoreMissingRun(t *testing.T) {
	store := openTemp(t)

	if _, err := store.LoadRun(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadRun() error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteRun(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteRun() error = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(sampleRun(5, core.NewInputFrame()))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	runs, err := store.Runs(10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}
