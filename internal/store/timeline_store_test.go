package store

import (
	"os"
	"path/filepath"
	"testing"

	camerr "github.com/amterp/camtint/internal/errors"
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/version"
)

func tempTimelinePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "timeline.toml")
}

func TestTimelineStore_SaveLoad(t *testing.T) {
	s := NewTimelineStore()
	path := tempTimelinePath(t)

	tl := &model.Timeline{
		ID:   "tl_test",
		Name: "Interview",
		Tracks: []model.Track{
			{
				Name: "Video 1",
				Kind: model.TrackVideo,
				Clips: []model.Clip{
					{Name: "Angle 1", Color: model.Orange},
					{Name: "b-roll"},
				},
			},
			{
				Name:  "Audio 1",
				Kind:  model.TrackAudio,
				Clips: []model.Clip{{Name: "A1"}},
			},
		},
	}

	if err := s.Save(path, tl); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !s.Exists(path) {
		t.Error("Exists() = false after save")
	}

	loaded, err := s.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Schema != version.CurrentTimelineSchema() {
		t.Errorf("Schema = %q, want %q", loaded.Schema, version.CurrentTimelineSchema())
	}
	if loaded.Name != "Interview" || loaded.ID != "tl_test" {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if loaded.ClipCount() != 3 {
		t.Errorf("ClipCount() = %d, want 3", loaded.ClipCount())
	}
	if loaded.Tracks[0].Clips[0].Color != model.Orange {
		t.Errorf("clip color = %q, want Orange", loaded.Tracks[0].Clips[0].Color)
	}
	if loaded.Tracks[0].Clips[1].Color != "" {
		t.Errorf("uncolored clip has color %q", loaded.Tracks[0].Clips[1].Color)
	}
}

func TestTimelineStore_LoadMissing(t *testing.T) {
	s := NewTimelineStore()

	_, err := s.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !camerr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestTimelineStore_LoadMissingSchema(t *testing.T) {
	s := NewTimelineStore()
	path := tempTimelinePath(t)

	if err := os.WriteFile(path, []byte("name = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(path); err == nil {
		t.Error("expected schema validation error")
	}
}

func TestTimelineStore_LoadWrongSchema(t *testing.T) {
	s := NewTimelineStore()
	path := tempTimelinePath(t)

	content := "schema = \"timeline/99\"\nname = \"x\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(path); err == nil {
		t.Error("expected schema validation error")
	}
}
