package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Timeline       *string
	Debug          *bool

	// init command
	InitUsed *bool
	InitPath *string
	InitName *string

	// scan command
	ScanUsed *bool

	// colorize command
	ColorizeUsed   *bool
	ColorizeMode   *string
	ColorizeSet    *[]string
	ColorizeAngle  *string
	ColorizeColor  *string
	ColorizeDryRun *bool

	// colors command
	ColorsUsed *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("camtint")
	cmd.SetDescription("Color multicam timeline clips by camera angle")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Timeline, _ = ra.NewString("timeline").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Path to the timeline file (default: discover from cwd)").
		Register(cmd, ra.WithGlobal(true))

	ctx.Debug, _ = ra.NewBool("debug").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Log clip names that fail angle detection").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerScan(cmd, ctx)
	registerColorize(cmd, ctx)
	registerColors(cmd, ctx)
	registerServe(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitPath, *ctx.InitName)

	case *ctx.ScanUsed:
		runScan(*ctx.Timeline, *ctx.Debug, *ctx.NonInteractive)

	case *ctx.ColorizeUsed:
		runColorize(colorizeArgs{
			timeline: *ctx.Timeline,
			mode:     *ctx.ColorizeMode,
			set:      *ctx.ColorizeSet,
			angle:    *ctx.ColorizeAngle,
			color:    *ctx.ColorizeColor,
			dryRun:   *ctx.ColorizeDryRun,
			debug:    *ctx.Debug,
		}, *ctx.NonInteractive)

	case *ctx.ColorsUsed:
		runColors()

	case *ctx.ServeUsed:
		runServe(*ctx.Timeline, *ctx.ServePort, *ctx.ServeNoOpen, *ctx.NonInteractive)
	}
}
