package testutil

import (
	"path/filepath"
	"testing"

	"github.com/amterp/camtint/internal/config"
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/store"
)

// TestTimeline returns a multicam timeline with sensible test defaults:
// one video track with three angle clips plus an undetectable clip, and
// one audio track with a matching angle clip.
func TestTimeline(name string) *model.Timeline {
	return &model.Timeline{
		ID:   "tl_test",
		Name: name,
		Tracks: []model.Track{
			{
				Name: "Video 1",
				Kind: model.TrackVideo,
				Clips: []model.Clip{
					{Name: "Angle 1"},
					{Name: "Cam2"},
					{Name: "Multicam - Video 3"},
					{Name: "b-roll"},
				},
			},
			{
				Name: "Audio 1",
				Kind: model.TrackAudio,
				Clips: []model.Clip{
					{Name: "Angle 1 audio"},
				},
			},
		},
	}
}

// TempTimelineFile writes the given timeline into a fresh temp
// directory and returns its path. Cleanup rides on t.TempDir.
func TempTimelineFile(t *testing.T, tl *model.Timeline) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.TimelineFileName)
	if err := store.NewTimelineStore().Save(path, tl); err != nil {
		t.Fatalf("failed to write timeline fixture: %v", err)
	}
	return path
}
