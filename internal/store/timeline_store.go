package store

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	camerr "github.com/amterp/camtint/internal/errors"
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/version"
)

// FileTimelineStore implements TimelineStore using the filesystem.
type FileTimelineStore struct{}

// NewTimelineStore creates a new timeline store.
func NewTimelineStore() *FileTimelineStore {
	return &FileTimelineStore{}
}

// Load reads a timeline document from disk.
func (s *FileTimelineStore) Load(path string) (*model.Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, camerr.TimelineNotFound(path)
		}
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}

	var tl model.Timeline
	if err := toml.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("invalid timeline file: %w", err)
	}

	// Strict version validation
	if tl.Schema == "" {
		return nil, version.MissingTimelineSchema(path)
	}
	if tl.Schema != version.CurrentTimelineSchema() {
		return nil, version.InvalidTimelineSchema(path, tl.Schema)
	}

	return &tl, nil
}

// Save writes a timeline document to disk.
func (s *FileTimelineStore) Save(path string, tl *model.Timeline) error {
	// Stamp current schema version
	tl.Schema = version.CurrentTimelineSchema()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create timeline file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(tl)
}

// Exists returns true if a timeline file exists at the path.
func (s *FileTimelineStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
