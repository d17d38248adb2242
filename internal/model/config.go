package model

import "strconv"

// GlobalConfig represents the user's global camtint configuration.
// Stored at ~/.config/camtint/config.toml
// Schema changes require a version bump—see internal/version/version.go.
type GlobalConfig struct {
	Schema      string            `toml:"schema"`
	DefaultMode string            `toml:"default_mode,omitempty"` // "auto", "manual" or "individual"
	Preferences map[string]string `toml:"preferences,omitempty"`  // angle -> color name
	Timelines   map[string]string `toml:"timelines,omitempty"`    // name -> path
}

// RegisterTimeline adds a timeline to the registry.
func (g *GlobalConfig) RegisterTimeline(name, path string) {
	if g.Timelines == nil {
		g.Timelines = make(map[string]string)
	}
	g.Timelines[name] = path
}

// PreferenceTable returns the effective preference table: the built-in
// defaults overlaid with any valid per-angle overrides from config.
// Malformed entries (non-numeric angle, angle < 1, unknown color) are
// ignored rather than rejected.
func (g *GlobalConfig) PreferenceTable() map[int]ColorName {
	prefs := PreferredColors()
	if g == nil {
		return prefs
	}
	for key, val := range g.Preferences {
		angle, err := strconv.Atoi(key)
		if err != nil || angle < 1 {
			continue
		}
		color, ok := ParseColor(val)
		if !ok {
			continue
		}
		prefs[angle] = color
	}
	return prefs
}
