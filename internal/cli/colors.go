package cli

import (
	"fmt"
	"sort"

	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/ra"
)

func registerColors(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("colors")
	cmd.SetDescription("List the clip color palette")

	ctx.ColorsUsed, _ = parent.RegisterCmd(cmd)
}

func runColors() {
	// Invert the default preference table for display: color -> angles
	// that prefer it.
	preferredBy := make(map[model.ColorName][]int)
	for angle, color := range model.PreferredColors() {
		preferredBy[color] = append(preferredBy[color], angle)
	}

	for _, color := range model.Palette {
		line := fmt.Sprintf("  %s %-10s %s", ColorSwatch(color), color, RenderMuted(color.Hex()))
		if angles, ok := preferredBy[color]; ok {
			sort.Ints(angles)
			for _, n := range angles {
				line += " " + RenderAngle(n)
			}
		}
		fmt.Println(line)
	}

	fmt.Printf("\n%d colors. Marked colors are the defaults for those angles.\n", model.PaletteSize)
}
