package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Play     PlayCmd     `cmd:"" default:"1" help:"Play against bots in the terminal"`
	Watch    WatchCmd    `cmd:"" help:"Watch bots play each other"`
	Simulate SimulateCmd `cmd:"" help:"Run many bot-only games and report statistics"`
	Version  VersionCmd  `cmd:"" help:"Show version"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("liarsdice"),
		kong.Description("Liar's Dice for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
