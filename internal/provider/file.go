package provider

import (
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/store"
)

// FileProvider adapts a loaded timeline document to the Provider
// interface. Color assignments mutate the in-memory document; Flush
// persists them back through the store.
type FileProvider struct {
	timeline *model.Timeline
	store    store.TimelineStore
	path     string
	dirty    bool
}

// NewFileProvider wraps a timeline loaded from path.
func NewFileProvider(tl *model.Timeline, s store.TimelineStore, path string) *FileProvider {
	return &FileProvider{timeline: tl, store: s, path: path}
}

// Timeline returns the backing document.
func (p *FileProvider) Timeline() *model.Timeline {
	return p.timeline
}

// Clips implements Provider.
func (p *FileProvider) Clips(kind model.TrackKind) []Clip {
	var out []Clip
	for ti := range p.timeline.Tracks {
		track := &p.timeline.Tracks[ti]
		if track.Kind != kind {
			continue
		}
		for ci := range track.Clips {
			out = append(out, &fileClip{provider: p, clip: &track.Clips[ci]})
		}
	}
	return out
}

// Dirty reports whether any clip color changed since the last flush.
func (p *FileProvider) Dirty() bool {
	return p.dirty
}

// Flush persists pending color changes. A no-op when nothing changed.
func (p *FileProvider) Flush() error {
	if !p.dirty {
		return nil
	}
	if err := p.store.Save(p.path, p.timeline); err != nil {
		return err
	}
	p.dirty = false
	return nil
}

// fileClip is a Clip handle pointing into the backing document.
type fileClip struct {
	provider *FileProvider
	clip     *model.Clip
}

func (c *fileClip) Name() string {
	return c.clip.Name
}

func (c *fileClip) SetColor(color model.ColorName) bool {
	if !color.Valid() {
		return false
	}
	if c.clip.Color != color {
		c.clip.Color = color
		c.provider.dirty = true
	}
	return true
}
