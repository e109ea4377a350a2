package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Single  SingleCmd  `cmd:"" help:"Play one game and print every turn"`
	Byn     BynCmd     `cmd:"" help:"Write game length statistics for 2..max players"`
	Quality QualityCmd `cmd:"" help:"Measure riffle shuffle quality"`
	Shuffle ShuffleCmd `cmd:"" help:"Riffle a list of values and check the result"`
}

// options configures the parser. Every failure, usage errors included,
// exits with status 1.
func options(exit func(int)) []kong.Option {
	return []kong.Option{
		kong.Name("beggar"),
		kong.Description("Beggar-My-Neighbour simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Exit(func(code int) {
			if code != 0 {
				code = 1
			}
			exit(code)
		}),
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options(os.Exit)...)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
