package storage

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/beatviz/internal/scheduler"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := SessionMetadata{
		AudioFile: "track.mp3",
		Mode:      "standard",
		Timestamp: time.Now(),
		Seed:      42,
		Duration:  90 * time.Second,
		BeatCount: 180,
		Spawned:   950,
		Synced:    true,
		TempoBPM:  120.5,
	}
	beats := []scheduler.BeatRecord{
		{Offset: 500 * time.Millisecond, Intensity: 0.8, Spawned: 6},
		{Offset: time.Second, Intensity: 0.95, Spawned: 8},
	}

	sessionID, err := st.Save(meta, beats)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected non-empty session id")
	}

	loaded, err := st.Load(sessionID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Mode != "standard" {
		t.Errorf("expected mode 'standard', got %q", loaded.Mode)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if loaded.BeatCount != 180 {
		t.Errorf("expected beat count 180, got %d", loaded.BeatCount)
	}
	if !loaded.Synced {
		t.Error("expected synced flag preserved")
	}
	if loaded.TempoBPM != 120.5 {
		t.Errorf("expected tempo 120.5, got %f", loaded.TempoBPM)
	}
}

func TestStoreBeatLogRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	beats := []scheduler.BeatRecord{
		{Offset: 500 * time.Millisecond, Intensity: 0.8, Spawned: 6},
		{Offset: time.Second, Intensity: 0.95, Spawned: 8},
		{Offset: 1500 * time.Millisecond, Intensity: 0.7, Spawned: 5},
	}

	sessionID, err := st.Save(SessionMetadata{Mode: "insane"}, beats)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.LoadBeats(sessionID)
	if err != nil {
		t.Fatalf("load beats failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 beat records, got %d", len(loaded))
	}
	for i := range beats {
		// offsets round-trip through 4-decimal CSV, so allow sub-ms slack
		if d := loaded[i].Offset - beats[i].Offset; d > time.Millisecond || d < -time.Millisecond {
			t.Errorf("record %d: offset %v, want %v", i, loaded[i].Offset, beats[i].Offset)
		}
		if math.Abs(loaded[i].Intensity-beats[i].Intensity) > 0.001 {
			t.Errorf("record %d: intensity %f, want %f", i, loaded[i].Intensity, beats[i].Intensity)
		}
		if loaded[i].Spawned != beats[i].Spawned {
			t.Errorf("record %d: spawned %d, want %d", i, loaded[i].Spawned, beats[i].Spawned)
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if sessions, err := st.List(); err != nil || len(sessions) != 0 {
		t.Fatalf("expected empty list, got %d sessions, err %v", len(sessions), err)
	}

	if _, err := st.Save(SessionMetadata{Mode: "simple"}, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sessions, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Mode != "simple" {
		t.Errorf("expected mode 'simple', got %q", sessions[0].Mode)
	}
}

func TestStoreListMissingBaseDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")

	sessions, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for a missing base dir, got %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions))
	}
}

func TestStoreLoadUnknownSession(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Load("standard_0"); err == nil {
		t.Error("expected an error for an unknown session")
	}
	if _, err := st.LoadBeats("standard_0"); err == nil {
		t.Error("expected an error for an unknown session")
	}
}
