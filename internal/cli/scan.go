package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/ra"
)

func registerScan(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("scan")
	cmd.SetDescription("Detect camera angles from clip names without changing anything")

	ctx.ScanUsed, _ = parent.RegisterCmd(cmd)
}

func runScan(timelinePath string, debug, nonInteractive bool) {
	app := NewApp(!nonInteractive)

	prov, path, err := app.OpenTimeline(timelinePath, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	app.ColorizeService.Debug = debug
	result := app.ColorizeService.Scan(prov)

	fmt.Printf("%s %s\n\n", RenderBold(prov.Timeline().Name), RenderMuted("("+path+")"))

	for _, clip := range result.Clips {
		if clip.Detected {
			fmt.Printf("  %-30s %s\n", clip.Name, RenderAngle(clip.Angle))
		} else {
			fmt.Printf("  %-30s %s\n", clip.Name, RenderMuted("no angle"))
		}
	}

	fmt.Println()
	if len(result.Angles) == 0 {
		PrintWarning("No camera angles detected in %d clips", len(result.Clips))
		return
	}

	angles := make([]string, len(result.Angles))
	for i, n := range result.Angles {
		angles[i] = fmt.Sprintf("%d", n)
	}
	PrintInfo("%d distinct angles: %s", len(result.Angles), strings.Join(angles, ", "))
}
