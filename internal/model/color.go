package model

import "strings"

// ColorName is one of the 16 clip colors a timeline clip can carry.
// Comparison is by exact identity; there are no synonyms.
type ColorName string

const (
	Orange    ColorName = "Orange"
	Apricot   ColorName = "Apricot"
	Yellow    ColorName = "Yellow"
	Lime      ColorName = "Lime"
	Olive     ColorName = "Olive"
	Green     ColorName = "Green"
	Teal      ColorName = "Teal"
	Navy      ColorName = "Navy"
	Blue      ColorName = "Blue"
	Purple    ColorName = "Purple"
	Violet    ColorName = "Violet"
	Pink      ColorName = "Pink"
	Tan       ColorName = "Tan"
	Beige     ColorName = "Beige"
	Brown     ColorName = "Brown"
	Chocolate ColorName = "Chocolate"
)

// Palette is the fixed ordered list of clip colors. Allocation cycles
// over this order, so the order itself is part of the contract.
var Palette = []ColorName{
	Orange, Apricot, Yellow, Lime,
	Olive, Green, Teal, Navy,
	Blue, Purple, Violet, Pink,
	Tan, Beige, Brown, Chocolate,
}

// PaletteSize is the number of colors available before repeats become
// unavoidable.
const PaletteSize = 16

// paletteHex maps each clip color to a hex value for terminal swatches.
var paletteHex = map[ColorName]string{
	Orange:    "#e6671d",
	Apricot:   "#e69e5c",
	Yellow:    "#e6c31d",
	Lime:      "#a3c31d",
	Olive:     "#7a8a2e",
	Green:     "#2e9960",
	Teal:      "#1db8c3",
	Navy:      "#1d5c99",
	Blue:      "#3b82e6",
	Purple:    "#8a5cc3",
	Violet:    "#b05ce6",
	Pink:      "#e65c9e",
	Tan:       "#c3a37a",
	Beige:     "#b8a88a",
	Brown:     "#8a5c2e",
	Chocolate: "#5c3b1d",
}

// Hex returns the swatch hex value for the color, or empty if unknown.
func (c ColorName) Hex() string {
	return paletteHex[c]
}

// Valid reports whether c is one of the palette colors.
func (c ColorName) Valid() bool {
	_, ok := paletteHex[c]
	return ok
}

// ParseColor resolves a user-supplied color string to a palette color.
// Matching ignores case but not spelling.
func ParseColor(s string) (ColorName, bool) {
	for _, c := range Palette {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// PreferredColors returns the default preference table: the color each of
// angles 1..8 should receive when available. Callers get a fresh copy and
// may overlay per-angle overrides from config.
func PreferredColors() map[int]ColorName {
	return map[int]ColorName{
		1: Orange,
		2: Green,
		3: Yellow,
		4: Blue,
		5: Pink,
		6: Purple,
		7: Teal,
		8: Brown,
	}
}
