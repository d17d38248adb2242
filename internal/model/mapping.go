package model

import "sort"

// AngleColorMap assigns a clip color to each camera angle. It is built
// fresh per colorize run and never persisted; only the clip colors it
// produces end up in the timeline document.
type AngleColorMap map[int]ColorName

// SortedAngles returns the mapped angles in ascending order. All
// deterministic output (reports, apply logs) enumerates the map through
// this.
func (m AngleColorMap) SortedAngles() []int {
	angles := make([]int, 0, len(m))
	for a := range m {
		angles = append(angles, a)
	}
	sort.Ints(angles)
	return angles
}

// UniqueColors returns the number of distinct colors actually used.
func (m AngleColorMap) UniqueColors() int {
	seen := make(map[ColorName]bool, len(m))
	for _, c := range m {
		seen[c] = true
	}
	return len(seen)
}
