package angle

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		want  int
		found bool
	}{
		// "angle" with separators
		{"Angle 7", 7, true},
		{"angle_7", 7, true},
		{"Angle-7", 7, true},
		{"ANGLE12", 12, true},

		// "cam" prefix, with or without intervening letters
		{"Cam2", 2, true},
		{"Camera2", 2, true},
		{"Camera 14", 14, true},
		{"cam_3", 3, true},

		// Compound clip naming
		{"Multicam - Video 3", 3, true},
		{"MULTICAM - Video 3", 3, true},
		{"multicam.video1", 1, true},

		// Bare track naming
		{"Video 5", 5, true},
		{"video_2", 2, true},
		{"Audio 4", 4, true},

		// "A<digits>" shorthand, boundary-guarded
		{"A1 Something", 1, true},
		{"take 2 - a3", 3, true},
		{"interview_a2", 2, true},

		// Priority: "angle" wins over later patterns
		{"Camera Angle 7", 7, true},

		// No match
		{"Camera", 0, false},
		{"Video", 0, false},
		{"b-roll", 0, false},
		{"", 0, false},
		{"Soundtrack", 0, false},

		// Matched pattern with non-positive digits fails outright
		{"Angle 0", 0, false},
		{"cam0", 0, false},

		// Accented names normalize before matching
		{"Cámara 2", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Detect(tt.name)
			if found != tt.found || got != tt.want {
				t.Errorf("Detect(%q) = (%d, %v), want (%d, %v)", tt.name, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestDetect_ShortCircuit(t *testing.T) {
	// "angle 0" textually matches the first pattern, so detection must
	// fail even though "cam2" later in the name would match pattern two.
	if n, ok := Detect("angle 0 cam2"); ok {
		t.Errorf("expected detection failure, got %d", n)
	}
}

func TestScanner(t *testing.T) {
	s := NewScanner()

	names := []string{"Angle 3", "Angle 1", "b-roll", "angle_3", "Cam2"}
	for _, name := range names {
		s.Add(name)
	}

	if s.Count() != 3 {
		t.Errorf("Count() = %d, want 3", s.Count())
	}
	if !s.Has(2) || s.Has(4) {
		t.Error("Has() gave wrong membership")
	}

	sorted := s.Sorted()
	want := []int{1, 2, 3}
	if len(sorted) != len(want) {
		t.Fatalf("Sorted() = %v, want %v", sorted, want)
	}
	for i := range want {
		if sorted[i] != want[i] {
			t.Errorf("Sorted()[%d] = %d, want %d", i, sorted[i], want[i])
		}
	}
}

func TestScanner_Empty(t *testing.T) {
	s := NewScanner()
	if s.Count() != 0 {
		t.Errorf("empty scanner Count() = %d", s.Count())
	}
	if got := s.Sorted(); len(got) != 0 {
		t.Errorf("empty scanner Sorted() = %v", got)
	}
}
