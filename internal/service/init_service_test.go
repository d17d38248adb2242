package service

import (
	"path/filepath"
	"testing"

	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/store"
)

// memGlobalStore keeps the global config in memory so tests don't touch
// the user's real config file.
type memGlobalStore struct {
	cfg *model.GlobalConfig
}

func (s *memGlobalStore) Load() (*model.GlobalConfig, error) {
	if s.cfg == nil {
		s.cfg = &model.GlobalConfig{}
	}
	return s.cfg, nil
}

func (s *memGlobalStore) Save(cfg *model.GlobalConfig) error {
	s.cfg = cfg
	return nil
}

func (s *memGlobalStore) EnsureExists() error { return nil }

func TestInitService_Create(t *testing.T) {
	ts := store.NewTimelineStore()
	gs := &memGlobalStore{}
	svc := NewInitService(ts, gs)

	path := filepath.Join(t.TempDir(), "timeline.toml")

	tl, err := svc.Create(path, "Concert")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if tl.ID == "" {
		t.Error("starter timeline has no ID")
	}
	if tl.Name != "Concert" {
		t.Errorf("Name = %q, want Concert", tl.Name)
	}
	if len(tl.TracksOf(model.TrackVideo)) == 0 || len(tl.TracksOf(model.TrackAudio)) == 0 {
		t.Error("starter timeline should have a video and an audio track")
	}

	if !ts.Exists(path) {
		t.Error("timeline file not written")
	}
	if gs.cfg == nil || len(gs.cfg.Timelines) != 1 {
		t.Error("timeline not registered in global config")
	}
}

func TestInitService_CreateRefusesOverwrite(t *testing.T) {
	ts := store.NewTimelineStore()
	svc := NewInitService(ts, &memGlobalStore{})

	path := filepath.Join(t.TempDir(), "timeline.toml")

	if _, err := svc.Create(path, "First"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := svc.Create(path, "Second"); err == nil {
		t.Error("Create should refuse to overwrite an existing timeline")
	}
}
