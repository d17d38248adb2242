package angle

import (
	"log"
	"sort"
)

// Scanner collects the distinct angles present in a set of clip names.
// Duplicates collapse; clips with undetectable names are skipped.
type Scanner struct {
	angles map[int]bool

	// Debug logs clip names that fail detection. Off by default since
	// unparseable names are expected, not errors.
	Debug bool
}

// NewScanner creates an empty scanner.
func NewScanner() *Scanner {
	return &Scanner{angles: make(map[int]bool)}
}

// Add runs detection on a clip name and records the result.
// Returns the detected angle and whether detection succeeded.
func (s *Scanner) Add(name string) (int, bool) {
	n, ok := Detect(name)
	if !ok {
		if s.Debug {
			log.Printf("no angle detected in clip name %q", name)
		}
		return 0, false
	}
	s.angles[n] = true
	return n, true
}

// Count returns the number of distinct angles seen so far.
func (s *Scanner) Count() int {
	return len(s.angles)
}

// Has reports whether the given angle has been seen.
func (s *Scanner) Has(angle int) bool {
	return s.angles[angle]
}

// Sorted returns the distinct angles in ascending order. Every
// downstream default and enumeration builds on this ordering.
func (s *Scanner) Sorted() []int {
	out := make([]int, 0, len(s.angles))
	for a := range s.angles {
		out = append(out, a)
	}
	sort.Ints(out)
	return out
}
