package cli

import (
	"fmt"
	"os"

	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/prompt"
	"github.com/amterp/camtint/internal/provider"
	"github.com/amterp/camtint/internal/resolver"
	"github.com/amterp/camtint/internal/service"
	"github.com/amterp/camtint/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	GlobalStore      store.GlobalStore
	TimelineStore    store.TimelineStore
	GlobalConfig     *model.GlobalConfig
	Prompter         prompt.Prompter
	InitService      *service.InitService
	ColorizeService  *service.ColorizeService
	TimelineResolver *resolver.TimelineResolver
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) *App {
	globalStore := store.NewGlobalStore()
	timelineStore := store.NewTimelineStore()

	// Load global config with warnings (don't silently ignore errors)
	globalCfg, err := globalStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load global config: %v\n", err)
		globalCfg = nil
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		GlobalStore:      globalStore,
		TimelineStore:    timelineStore,
		GlobalConfig:     globalCfg,
		Prompter:         prompter,
		InitService:      service.NewInitService(timelineStore, globalStore),
		ColorizeService:  service.NewColorizeService(),
		TimelineResolver: resolver.NewTimelineResolver(globalStore, prompter),
	}
}

// Preferences returns the effective angle-color preference table,
// built-in defaults overlaid with any config overrides.
func (a *App) Preferences() map[int]model.ColorName {
	return a.GlobalConfig.PreferenceTable()
}

// OpenTimeline resolves which timeline file to use and loads it into a
// file-backed provider.
func (a *App) OpenTimeline(explicitPath string, interactive bool) (*provider.FileProvider, string, error) {
	path, err := a.TimelineResolver.Resolve(explicitPath, interactive)
	if err != nil {
		return nil, "", err
	}

	tl, err := a.TimelineStore.Load(path)
	if err != nil {
		return nil, "", err
	}

	return provider.NewFileProvider(tl, a.TimelineStore, path), path, nil
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
