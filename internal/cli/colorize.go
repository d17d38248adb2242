package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amterp/camtint/internal/allocate"
	camerr "github.com/amterp/camtint/internal/errors"
	"github.com/amterp/camtint/internal/model"
	"github.com/amterp/camtint/internal/report"
	"github.com/amterp/camtint/internal/service"
	"github.com/amterp/ra"
)

func registerColorize(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("colorize")
	cmd.SetDescription("Assign palette colors to clips by camera angle")

	ctx.ColorizeMode, _ = ra.NewString("mode").
		SetShort("m").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Assignment mode: auto, manual or individual (default: auto)").
		Register(cmd)

	ctx.ColorizeSet, _ = ra.NewStringSlice("set").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Manual assignment (angle=color format, repeatable)").
		Register(cmd)

	ctx.ColorizeAngle, _ = ra.NewString("angle").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Angle to assign in individual mode").
		Register(cmd)

	ctx.ColorizeColor, _ = ra.NewString("color").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Color to assign in individual mode").
		Register(cmd)

	ctx.ColorizeDryRun, _ = ra.NewBool("dry-run").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Show the mapping report without changing any clips").
		Register(cmd)

	ctx.ColorizeUsed, _ = parent.RegisterCmd(cmd)
}

type colorizeArgs struct {
	timeline string
	mode     string
	set      []string
	angle    string
	color    string
	dryRun   bool
	debug    bool
}

func runColorize(args colorizeArgs, nonInteractive bool) {
	app := NewApp(!nonInteractive)

	modeStr := args.mode
	if modeStr == "" && app.GlobalConfig != nil {
		modeStr = app.GlobalConfig.DefaultMode
	}
	mode, err := service.ParseMode(modeStr)
	if err != nil {
		Fatal(err)
	}

	prov, _, err := app.OpenTimeline(args.timeline, !nonInteractive)
	if err != nil {
		Fatal(err)
	}

	app.ColorizeService.Debug = args.debug
	scan := app.ColorizeService.Scan(prov)

	rows, err := selectorRows(app, mode, scan.Angles, args, nonInteractive)
	if err != nil {
		Fatal(err)
	}

	mapping := app.ColorizeService.Allocate(mode, scan.Angles, app.Preferences(), rows)
	rep := report.Build(mapping)
	printReport(rep)

	if args.dryRun {
		PrintInfo("Dry run: no clips changed")
		return
	}

	applied := app.ColorizeService.Apply(mapping, prov)
	if err := prov.Flush(); err != nil {
		Fatal(err)
	}
	PrintSuccess("Colored %d clips", applied)
}

// selectorRows gathers the (angle, color) rows for manual and individual
// mode, from flags when given and prompts otherwise. Automatic mode needs
// none.
func selectorRows(app *App, mode service.Mode, angles []int, args colorizeArgs, nonInteractive bool) ([]allocate.Row, error) {
	switch mode {
	case service.ModeManual:
		if len(args.set) > 0 {
			return parseSetFlags(args.set)
		}
		if nonInteractive {
			return nil, &camerr.ValidationError{Field: "set", Message: "manual mode needs --set angle=color in non-interactive runs"}
		}
		return promptManualRows(app, angles)

	case service.ModeIndividual:
		if args.angle != "" || args.color != "" {
			if err := validateSelector(args.angle, args.color); err != nil {
				return nil, err
			}
			return []allocate.Row{{Angle: args.angle, Color: args.color}}, nil
		}
		if nonInteractive {
			return nil, &camerr.ValidationError{Field: "angle", Message: "individual mode needs --angle and --color in non-interactive runs"}
		}
		return promptIndividualRow(app, angles)

	default:
		return nil, nil
	}
}

// parseSetFlags parses repeated --set values. Flag typos are rejected
// here so the user hears about them; the allocator itself drops invalid
// rows silently.
func parseSetFlags(set []string) ([]allocate.Row, error) {
	rows := make([]allocate.Row, 0, len(set))
	for _, s := range set {
		angle, color, found := strings.Cut(s, "=")
		if !found {
			return nil, &camerr.ValidationError{Field: "set", Message: fmt.Sprintf("%q is not in angle=color format", s)}
		}
		angle = strings.TrimSpace(angle)
		color = strings.TrimSpace(color)
		if err := validateSelector(angle, color); err != nil {
			return nil, err
		}
		rows = append(rows, allocate.Row{Angle: angle, Color: color})
	}
	return rows, nil
}

// validateSelector checks one selector pair. The Bypass sentinel passes
// as an angle; its color is ignored downstream.
func validateSelector(angle, color string) error {
	if angle != allocate.Bypass {
		n, err := strconv.Atoi(angle)
		if err != nil || n < 1 {
			return camerr.InvalidAngle(angle)
		}
	}
	if color != "" {
		if _, ok := model.ParseColor(color); !ok {
			return camerr.UnknownColor(color)
		}
	}
	return nil
}

// colorOptions is the selection list shown in manual and individual
// prompts: the palette in order, with Bypass first where allowed.
func colorOptions(withBypass bool) []string {
	opts := make([]string, 0, model.PaletteSize+1)
	if withBypass {
		opts = append(opts, allocate.Bypass)
	}
	for _, c := range model.Palette {
		opts = append(opts, string(c))
	}
	return opts
}

// promptManualRows asks for a color per discovered angle. Choosing
// Bypass leaves that angle unmapped.
func promptManualRows(app *App, angles []int) ([]allocate.Row, error) {
	if len(angles) == 0 {
		return nil, &camerr.ValidationError{Field: "angles", Message: "no camera angles detected; nothing to assign"}
	}

	rows := make([]allocate.Row, 0, len(angles))
	for _, n := range angles {
		choice, err := app.Prompter.Select(fmt.Sprintf("Color for angle %d", n), colorOptions(true))
		if err != nil {
			return nil, err
		}
		if choice == allocate.Bypass {
			rows = append(rows, allocate.Row{Angle: allocate.Bypass})
			continue
		}
		rows = append(rows, allocate.Row{Angle: strconv.Itoa(n), Color: choice})
	}
	return rows, nil
}

// promptIndividualRow asks for one angle and one color.
func promptIndividualRow(app *App, angles []int) ([]allocate.Row, error) {
	if len(angles) == 0 {
		return nil, &camerr.ValidationError{Field: "angles", Message: "no camera angles detected; nothing to assign"}
	}

	options := make([]string, len(angles))
	for i, n := range angles {
		options[i] = strconv.Itoa(n)
	}

	angle, err := app.Prompter.Select("Angle to color", options)
	if err != nil {
		return nil, err
	}
	color, err := app.Prompter.Select(fmt.Sprintf("Color for angle %s", angle), colorOptions(false))
	if err != nil {
		return nil, err
	}

	return []allocate.Row{{Angle: angle, Color: color}}, nil
}

// printReport renders the mapping report with color swatches.
func printReport(rep *report.Report) {
	for _, angle := range rep.Mapping.SortedAngles() {
		color := rep.Mapping[angle]
		fmt.Printf("  %s %s -> %s\n", ColorSwatch(color), RenderAngle(angle), RenderClipColor(string(color), color))
	}

	fmt.Printf("\n%d angles mapped using %d unique colors.\n", rep.AngleCount, rep.UniqueColors)

	if w := rep.Warning(); w != "" {
		PrintWarning("%s", w)
	}
}
