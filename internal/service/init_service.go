package service

import (
	"fmt"
	"path/filepath"

	"github.com/amterp/camtint/internal/id"
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/store"
)

// InitService creates starter timeline documents.
type InitService struct {
	timelineStore store.TimelineStore
	globalStore   store.GlobalStore
}

// NewInitService creates a new init service.
func NewInitService(timelineStore store.TimelineStore, globalStore store.GlobalStore) *InitService {
	return &InitService{timelineStore: timelineStore, globalStore: globalStore}
}

// Create writes a starter timeline at path and registers it in the
// global config. Fails if a timeline already exists there.
func (s *InitService) Create(path, name string) (*model.Timeline, error) {
	if s.timelineStore.Exists(path) {
		return nil, fmt.Errorf("timeline already exists: %s", path)
	}

	if name == "" {
		name = filepath.Base(filepath.Dir(absOrSelf(path)))
	}

	tl := &model.Timeline{
		ID:   id.Generate(),
		Name: name,
		Tracks: []model.Track{
			{Name: "Video 1", Kind: model.TrackVideo},
			{Name: "Audio 1", Kind: model.TrackAudio},
		},
	}

	if err := s.timelineStore.Save(path, tl); err != nil {
		return nil, err
	}

	// Best effort - registration is a convenience, not a requirement.
	if cfg, err := s.globalStore.Load(); err == nil {
		cfg.RegisterTimeline(name, absOrSelf(path))
		_ = s.globalStore.Save(cfg)
	}

	return tl, nil
}

func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
