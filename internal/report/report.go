// Package report validates a finished angle-color mapping and renders a
// diagnostic summary. It is advisory only: nothing here blocks apply.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amterp/camtint/internal/model"
)

// Classification describes the worst anomaly found in a mapping.
type Classification int

const (
	// OK means every mapped angle has its own color.
	OK Classification = iota
	// Duplicates means at least two angles share a color even though
	// the palette had capacity. Manual mode can resolve these.
	Duplicates
	// UnavoidableRepeats means there are more angles than palette
	// colors, so repeats cannot be assigned away.
	UnavoidableRepeats
)

// Report is the validation result for one mapping.
type Report struct {
	Mapping        model.AngleColorMap
	AngleCount     int
	UniqueColors   int
	Classification Classification

	// DuplicateGroups lists, per repeated color, the angles sharing it
	// (ascending). Colors used once do not appear.
	DuplicateGroups map[model.ColorName][]int
}

// Build validates a mapping: groups angles by color, counts distinct
// colors and classifies the result. Palette exhaustion outranks plain
// duplicates.
func Build(m model.AngleColorMap) *Report {
	byColor := make(map[model.ColorName][]int)
	for angle, color := range m {
		byColor[color] = append(byColor[color], angle)
	}

	dups := make(map[model.ColorName][]int)
	for color, angles := range byColor {
		if len(angles) > 1 {
			sort.Ints(angles)
			dups[color] = angles
		}
	}

	r := &Report{
		Mapping:         m,
		AngleCount:      len(m),
		UniqueColors:    len(byColor),
		DuplicateGroups: dups,
	}

	switch {
	case r.AngleCount > model.PaletteSize:
		r.Classification = UnavoidableRepeats
	case len(dups) > 0:
		r.Classification = Duplicates
	}

	return r
}

// Warning returns the advisory warning line for the classification, or
// empty when the mapping is clean.
func (r *Report) Warning() string {
	switch r.Classification {
	case UnavoidableRepeats:
		return fmt.Sprintf("%d angles exceed the %d-color palette; repeats are unavoidable",
			r.AngleCount, model.PaletteSize)
	case Duplicates:
		return "some colors are assigned to multiple angles; consider Manual mode"
	default:
		return ""
	}
}

// Render returns the full diagnostic text: a per-angle listing in
// ascending angle order, the summary line, and the warning if any.
func (r *Report) Render() string {
	var b strings.Builder

	for _, angle := range r.Mapping.SortedAngles() {
		fmt.Fprintf(&b, "Angle %d -> %s\n", angle, r.Mapping[angle])
	}

	fmt.Fprintf(&b, "%d angles mapped using %d unique colors.\n", r.AngleCount, r.UniqueColors)

	if w := r.Warning(); w != "" {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}

	return b.String()
}
