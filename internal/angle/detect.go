// Package angle infers camera angle numbers from free-form clip names.
package angle

import (
	"regexp"
	"strconv"

	"github.com/amterp/camtint/internal/util"
)

// Naming patterns, in priority order. The first pattern that matches
// wins—detection is a short-circuit, not a longest-match search. All
// matching happens on the normalized (lowercased, accent-stripped) name.
var patterns = []*regexp.Regexp{
	// "Angle 7", "angle_7", "Angle-7"
	regexp.MustCompile(`angle[\s_-]*(\d+)`),
	// "Cam2", "cam_2", "Camera 2"
	regexp.MustCompile(`cam[a-z]*[\s_-]*(\d+)`),
	// Compound clip naming: "Multicam - Video 1", "multicam.video1"
	regexp.MustCompile(`multicam[\s_.-]*video[\s_-]*(\d+)`),
	// Bare video track naming: "Video 3"
	regexp.MustCompile(`video[\s_-]*(\d+)`),
	// Bare audio track naming: "Audio 3"
	regexp.MustCompile(`audio[\s_-]*(\d+)`),
	// "A1" shorthand. The letter must start the name or follow a
	// separator so we don't match the "a" inside words like "Camera".
	regexp.MustCompile(`(?:^|[\s_-])a(\d+)`),
}

// Detect infers the camera angle from a clip name. Returns false when
// the name is empty or no pattern yields a positive integer. Once a
// pattern textually matches, its captured digits decide the outcome:
// an unparseable or non-positive capture fails the whole detection
// rather than falling through to later patterns.
func Detect(name string) (int, bool) {
	if name == "" {
		return 0, false
	}

	normalized := util.NormalizeName(name)
	for _, re := range patterns {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
