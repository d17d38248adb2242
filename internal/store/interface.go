package store

import "github.com/amterp/camtint/internal/model"

// TimelineStore handles timeline document persistence.
type TimelineStore interface {
	Load(path string) (*model.Timeline, error)
	Save(path string, tl *model.Timeline) error
	Exists(path string) bool
}

// GlobalStore handles global config persistence.
type GlobalStore interface {
	Load() (*model.GlobalConfig, error)
	Save(config *model.GlobalConfig) error
	EnsureExists() error
}
