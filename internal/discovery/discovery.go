package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/camtint/internal/config"
)

// DiscoverTimeline finds a timeline file by walking up from cwd,
// looking for the default file name in each directory.
// Returns empty string if nothing was found (not an error: the caller
// decides whether a missing timeline is fatal).
func DiscoverTimeline() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverTimelineFrom(cwd)
}

// DiscoverTimelineFrom finds a timeline file starting from a given directory.
func DiscoverTimelineFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, config.TimelineFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, no timeline found
			return "", nil
		}
		dir = parent
	}
}
