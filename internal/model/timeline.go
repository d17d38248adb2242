package model

// TrackKind distinguishes the two track collections a timeline carries.
type TrackKind string

const (
	TrackVideo TrackKind = "video"
	TrackAudio TrackKind = "audio"
)

// Timeline is the timeline document, stored as timeline.toml.
// Schema changes require a version bump—see internal/version/version.go.
type Timeline struct {
	Schema string  `toml:"schema" json:"schema"`
	ID     string  `toml:"id" json:"id"`
	Name   string  `toml:"name" json:"name"`
	Tracks []Track `toml:"tracks" json:"tracks"`
}

// Track is an ordered list of clips of one kind.
type Track struct {
	Name  string    `toml:"name" json:"name"`
	Kind  TrackKind `toml:"kind" json:"kind"`
	Clips []Clip    `toml:"clips,omitempty" json:"clips,omitempty"`
}

// Clip is a single clip on a track. Color is empty until assigned.
type Clip struct {
	Name  string    `toml:"name" json:"name"`
	Color ColorName `toml:"color,omitempty" json:"color,omitempty"`
}

// TracksOf returns the tracks of the given kind, in timeline order.
func (t *Timeline) TracksOf(kind TrackKind) []Track {
	var out []Track
	for _, tr := range t.Tracks {
		if tr.Kind == kind {
			out = append(out, tr)
		}
	}
	return out
}

// ClipCount returns the total number of clips across all tracks.
func (t *Timeline) ClipCount() int {
	n := 0
	for _, tr := range t.Tracks {
		n += len(tr.Clips)
	}
	return n
}
