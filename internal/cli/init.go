package cli

import (
	"github.com/amterp/camtint/internal/config"
	"github.com/amterp/ra"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create a starter timeline file")

	ctx.InitPath, _ = ra.NewString("path").
		SetShort("p").
		SetOptional(true).
		SetDefault(config.TimelineFileName).
		SetFlagOnly(true).
		SetUsage("Where to write the timeline file").
		Register(cmd)

	ctx.InitName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Timeline name (default: parent directory name)").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(path, name string) {
	app := NewApp(true)

	tl, err := app.InitService.Create(path, name)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Created timeline %q at %s", tl.Name, path)
	PrintInfo("Add clips to its tracks, then run 'camtint colorize'")
}
