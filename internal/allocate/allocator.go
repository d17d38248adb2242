// Package allocate builds angle-to-color mappings across the three
// assignment modes.
package allocate

import (
	"strconv"

	"github.com/amterp/camtint/internal/model"
)

// Bypass is the sentinel angle selector value that excludes a row from
// the resulting map.
const Bypass = "Bypass"

// defaultAngleCount is the angle sequence assumed when a scan found
// nothing: angles 1..10.
const defaultAngleCount = 10

// Row is one (angle selector, color selector) pair, as it arrives from
// flags or an interactive form. Both fields are plain selector strings;
// rows with the Bypass sentinel or an empty color are dropped.
type Row struct {
	Angle string
	Color string
}

// Allocator assigns palette colors to angles. The cycling cursor is
// per-instance state, so each colorize run constructs a fresh Allocator
// and allocation stays reproducible.
type Allocator struct {
	prefs  map[int]model.ColorName
	used   map[model.ColorName]bool
	cursor int
}

// New creates an allocator with the given preference table. A nil table
// falls back to the built-in defaults.
func New(prefs map[int]model.ColorName) *Allocator {
	if prefs == nil {
		prefs = model.PreferredColors()
	}
	return &Allocator{
		prefs: prefs,
		used:  make(map[model.ColorName]bool),
	}
}

// Automatic maps each angle to a color, processing angles in the given
// order. Callers pass the scanner's ascending angle list; that ordering
// decides which angles win their preferred colors. An empty list
// substitutes the default sequence 1..10.
//
// Each angle gets its preferred color if still unused, otherwise the
// next unused palette color under a cyclic cursor. Once every palette
// color is used, assignment degrades to a stable round-robin over the
// palette rather than failing.
func (a *Allocator) Automatic(angles []int) model.AngleColorMap {
	if len(angles) == 0 {
		angles = make([]int, defaultAngleCount)
		for i := range angles {
			angles[i] = i + 1
		}
	}

	m := make(model.AngleColorMap, len(angles))
	for _, angle := range angles {
		if pref, ok := a.prefs[angle]; ok && !a.used[pref] {
			m[angle] = pref
			a.used[pref] = true
			continue
		}
		m[angle] = a.next()
	}
	return m
}

// next returns the next unused palette color under the cyclic cursor.
// The cursor advances on every lookup, whether or not the color was
// eligible. With the palette exhausted it returns the color at the
// cursor position, giving a deterministic round-robin.
func (a *Allocator) next() model.ColorName {
	if len(a.used) >= model.PaletteSize {
		c := model.Palette[a.cursor%model.PaletteSize]
		a.cursor++
		return c
	}

	for i := 0; i < model.PaletteSize; i++ {
		c := model.Palette[a.cursor%model.PaletteSize]
		a.cursor++
		if !a.used[c] {
			a.used[c] = true
			return c
		}
	}

	// Unreachable: the used check above guarantees a free color exists.
	return model.Palette[0]
}

// Manual populates the map directly from selector rows, in row order.
// No preference or cycling logic applies. A later row silently
// overwrites an earlier one that names the same angle—last row wins.
func (a *Allocator) Manual(rows []Row) model.AngleColorMap {
	m := make(model.AngleColorMap)
	for _, row := range rows {
		angle, color, ok := parseRow(row)
		if !ok {
			continue
		}
		m[angle] = color
	}
	return m
}

// Individual applies exactly one selector row, with the same Bypass and
// empty-color exclusions as Manual.
func (a *Allocator) Individual(row Row) model.AngleColorMap {
	return a.Manual([]Row{row})
}

// parseRow resolves a selector row to an (angle, color) pair. Rows that
// are bypassed, empty, or structurally invalid are dropped without
// error; the reporter flags any resulting anomalies downstream.
func parseRow(row Row) (int, model.ColorName, bool) {
	if row.Angle == "" || row.Angle == Bypass || row.Color == "" {
		return 0, "", false
	}

	angle, err := strconv.Atoi(row.Angle)
	if err != nil || angle < 1 {
		return 0, "", false
	}

	color, ok := model.ParseColor(row.Color)
	if !ok {
		return 0, "", false
	}

	return angle, color, true
}
