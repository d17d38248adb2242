package resolver

import (
	"os"
	"sort"

	"github.com/amterp/camtint/internal/discovery"
	camerr "github.com/amterp/camtint/internal/errors"
	"github.com/amterp/camtint/internal/prompt"
	"github.com/amterp/camtint/internal/store"
)

// TimelineResolver handles timeline selection logic.
type TimelineResolver struct {
	globalStore store.GlobalStore
	prompter    prompt.Prompter
}

// NewTimelineResolver creates a new timeline resolver.
func NewTimelineResolver(globalStore store.GlobalStore, prompter prompt.Prompter) *TimelineResolver {
	return &TimelineResolver{globalStore: globalStore, prompter: prompter}
}

// Resolve determines which timeline file to use:
// 1. If an explicit path is provided, use it (must exist)
// 2. Walk up from cwd for a timeline.toml
// 3. Registered timelines in global config: one -> use it, several ->
//    prompt when interactive
// 4. Otherwise, fail: a missing timeline is the one fatal precondition
func (r *TimelineResolver) Resolve(explicitPath string, interactive bool) (string, error) {
	// 1. Explicit path
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", &camerr.NoTimelineError{Path: explicitPath}
		}
		return explicitPath, nil
	}

	// 2. Walk up from cwd
	found, err := discovery.DiscoverTimeline()
	if err != nil {
		return "", err
	}
	if found != "" {
		return found, nil
	}

	// 3. Registered timelines
	globalCfg, _ := r.globalStore.Load()
	if globalCfg != nil && len(globalCfg.Timelines) > 0 {
		paths := registeredPaths(globalCfg.Timelines)

		if len(paths) == 1 {
			return paths[0], nil
		}
		if interactive {
			return r.prompter.Select("Select timeline", paths)
		}
	}

	// 4. Nothing to work with
	return "", &camerr.NoTimelineError{}
}

// registeredPaths returns registered timeline paths that still exist,
// sorted for stable prompting.
func registeredPaths(timelines map[string]string) []string {
	var paths []string
	for _, path := range timelines {
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}
