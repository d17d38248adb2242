package cli

import (
	"errors"
	"testing"

	"github.com/amterp/camtint/internal/allocate"
	camerr "github.com/amterp/camtint/internal/errors"
	"github.com/amterp/camtint/internal/model"
)

func TestParseSetFlags(t *testing.T) {
	rows, err := parseSetFlags([]string{"1=Orange", "2=Teal", " 3 = Pink "})
	if err != nil {
		t.Fatalf("parseSetFlags failed: %v", err)
	}

	want := []allocate.Row{
		{Angle: "1", Color: "Orange"},
		{Angle: "2", Color: "Teal"},
		{Angle: "3", Color: "Pink"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		if row != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, row, want[i])
		}
	}
}

func TestParseSetFlags_Bypass(t *testing.T) {
	rows, err := parseSetFlags([]string{"Bypass=Orange"})
	if err != nil {
		t.Fatalf("Bypass selector should be accepted: %v", err)
	}
	if rows[0].Angle != allocate.Bypass {
		t.Errorf("Angle = %q, want %q", rows[0].Angle, allocate.Bypass)
	}
}

func TestParseSetFlags_Rejects(t *testing.T) {
	tests := []struct {
		name string
		set  string
	}{
		{"missing separator", "1Orange"},
		{"unknown color", "1=Vermilion"},
		{"zero angle", "0=Orange"},
		{"non-numeric angle", "one=Orange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSetFlags([]string{tt.set})
			if err == nil {
				t.Fatalf("%q should be rejected", tt.set)
			}
			if !camerr.IsValidationError(err) {
				t.Errorf("error should be a validation error, got %v", err)
			}
		})
	}
}

func TestValidateSelector_CaseInsensitiveColor(t *testing.T) {
	if err := validateSelector("1", "orange"); err != nil {
		t.Errorf("lowercase color should validate: %v", err)
	}
}

func TestColorOptions(t *testing.T) {
	opts := colorOptions(true)
	if len(opts) != model.PaletteSize+1 {
		t.Fatalf("got %d options, want %d", len(opts), model.PaletteSize+1)
	}
	if opts[0] != allocate.Bypass {
		t.Errorf("first option = %q, want Bypass", opts[0])
	}
	if opts[1] != string(model.Orange) {
		t.Errorf("second option = %q, want Orange", opts[1])
	}

	opts = colorOptions(false)
	if len(opts) != model.PaletteSize || opts[0] != string(model.Orange) {
		t.Errorf("options without Bypass = %v", opts)
	}
}

func TestSelectorRows_NonInteractiveManualNeedsSet(t *testing.T) {
	app := &App{}
	_, err := selectorRows(app, "manual", []int{1, 2}, colorizeArgs{}, true)
	if err == nil {
		t.Fatal("manual mode without --set should fail non-interactively")
	}
	var verr *camerr.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error should be a validation error, got %v", err)
	}
}

func TestSelectorRows_IndividualFromFlags(t *testing.T) {
	app := &App{}
	rows, err := selectorRows(app, "individual", []int{2}, colorizeArgs{angle: "2", color: "Teal"}, true)
	if err != nil {
		t.Fatalf("selectorRows failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Angle != "2" || rows[0].Color != "Teal" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSelectorRows_AutoNeedsNothing(t *testing.T) {
	rows, err := selectorRows(&App{}, "auto", nil, colorizeArgs{}, true)
	if err != nil || rows != nil {
		t.Errorf("auto mode should yield no rows and no error, got %v, %v", rows, err)
	}
}
