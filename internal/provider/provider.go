// Package provider defines the timeline provider boundary: the core
// scans and colorizes clips only through these interfaces, never by
// touching the backing document directly.
package provider

import "github.com/amterp/camtint/internal/model"

// Clip is a handle to one clip on the timeline.
type Clip interface {
	// Name returns the clip's name, possibly empty.
	Name() string

	// SetColor requests the provider set the clip's color. Returns
	// false when the provider rejects the assignment; callers skip the
	// clip and continue.
	SetColor(color model.ColorName) bool
}

// Provider exposes a timeline's clips to the core.
type Provider interface {
	// Clips returns the clips on all tracks of the given kind, in
	// track order then clip order.
	Clips(kind model.TrackKind) []Clip
}
