package allocate

import (
	"reflect"
	"testing"

	"github.com/amterp/camtint/internal/model"
)

func TestAutomatic_PreferredColors(t *testing.T) {
	m := New(nil).Automatic([]int{1, 2, 3})

	want := model.AngleColorMap{
		1: model.Orange,
		2: model.Green,
		3: model.Yellow,
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Automatic({1,2,3}) = %v, want %v", m, want)
	}
}

func TestAutomatic_Deterministic(t *testing.T) {
	angles := []int{1, 2, 3, 9, 14, 20}

	first := New(nil).Automatic(angles)
	second := New(nil).Automatic(angles)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input produced different maps: %v vs %v", first, second)
	}
}

func TestAutomatic_CursorSkipsUsedColors(t *testing.T) {
	// Angles 9 and 10 have no preference entry. The cursor starts at
	// Orange (used by angle 1) and must skip used colors while still
	// advancing one position per lookup.
	m := New(nil).Automatic([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	if m[9] != model.Apricot {
		t.Errorf("angle 9 = %s, want Apricot", m[9])
	}
	if m[10] != model.Lime {
		t.Errorf("angle 10 = %s, want Lime", m[10])
	}
}

func TestAutomatic_PaletteExhaustion(t *testing.T) {
	angles := make([]int, 20)
	for i := range angles {
		angles[i] = i + 1
	}

	m := New(nil).Automatic(angles)

	if len(m) != 20 {
		t.Fatalf("expected 20 mapped angles, got %d", len(m))
	}

	// The first 16 angles in ascending order get distinct colors.
	seen := make(map[model.ColorName]int)
	for angle := 1; angle <= 16; angle++ {
		if prev, dup := seen[m[angle]]; dup {
			t.Errorf("angle %d repeats color %s of angle %d before exhaustion", angle, m[angle], prev)
		}
		seen[m[angle]] = angle
	}

	// Repeats begin at the 17th angle: exactly 4 angles share a color
	// with an earlier angle.
	repeats := 0
	for angle := 17; angle <= 20; angle++ {
		if _, dup := seen[m[angle]]; dup {
			repeats++
		}
	}
	if repeats != 4 {
		t.Errorf("expected 4 repeated colors past exhaustion, got %d", repeats)
	}

	// Round-robin restart from the top of the palette.
	if m[17] != model.Orange || m[18] != model.Apricot {
		t.Errorf("post-exhaustion round-robin wrong: 17=%s 18=%s", m[17], m[18])
	}
}

func TestAutomatic_EmptyScanUsesDefaultSequence(t *testing.T) {
	m := New(nil).Automatic(nil)

	if len(m) != 10 {
		t.Fatalf("expected default sequence 1..10, got %d entries", len(m))
	}
	if m[1] != model.Orange || m[8] != model.Brown {
		t.Errorf("default sequence should honor preferences: 1=%s 8=%s", m[1], m[8])
	}
}

func TestAutomatic_PreferenceOverrides(t *testing.T) {
	prefs := model.PreferredColors()
	prefs[1] = model.Chocolate

	m := New(prefs).Automatic([]int{1, 2})

	if m[1] != model.Chocolate {
		t.Errorf("angle 1 = %s, want Chocolate override", m[1])
	}
	if m[2] != model.Green {
		t.Errorf("angle 2 = %s, want Green", m[2])
	}
}

func TestAutomatic_PreferredColorAlreadyUsed(t *testing.T) {
	// Two angles preferring the same color: the first (lowest) wins the
	// preference, the second falls through to the cursor.
	prefs := map[int]model.ColorName{1: model.Teal, 2: model.Teal}

	m := New(prefs).Automatic([]int{1, 2})

	if m[1] != model.Teal {
		t.Errorf("angle 1 = %s, want Teal", m[1])
	}
	if m[2] == model.Teal {
		t.Error("angle 2 must not repeat Teal while the palette has capacity")
	}
	if m[2] != model.Orange {
		t.Errorf("angle 2 = %s, want Orange (first unused under cursor)", m[2])
	}
}

func TestManual_LastRowWins(t *testing.T) {
	m := New(nil).Manual([]Row{
		{Angle: "1", Color: "Orange"},
		{Angle: "1", Color: "Blue"},
	})

	if len(m) != 1 || m[1] != model.Blue {
		t.Errorf("Manual duplicate-angle rows = %v, want {1: Blue}", m)
	}
}

func TestManual_DropsInvalidRows(t *testing.T) {
	m := New(nil).Manual([]Row{
		{Angle: Bypass, Color: "Orange"},     // bypassed
		{Angle: "2", Color: ""},              // empty color
		{Angle: "", Color: "Teal"},           // empty angle
		{Angle: "x", Color: "Teal"},          // non-numeric angle
		{Angle: "0", Color: "Teal"},          // angle < 1
		{Angle: "3", Color: "NotAColor"},     // unknown color
		{Angle: "4", Color: "teal"},          // valid, case-insensitive
	})

	want := model.AngleColorMap{4: model.Teal}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Manual = %v, want %v", m, want)
	}
}

func TestManual_NoRows(t *testing.T) {
	m := New(nil).Manual(nil)
	if len(m) != 0 {
		t.Errorf("Manual(nil) = %v, want empty map", m)
	}
}

func TestIndividual(t *testing.T) {
	m := New(nil).Individual(Row{Angle: "5", Color: "Navy"})
	want := model.AngleColorMap{5: model.Navy}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("Individual = %v, want %v", m, want)
	}

	m = New(nil).Individual(Row{Angle: Bypass, Color: "Navy"})
	if len(m) != 0 {
		t.Errorf("bypassed Individual = %v, want empty map", m)
	}
}
