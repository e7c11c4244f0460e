package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`
	Odds    OddsCmd          `cmd:"" default:"withargs" help:"Estimate showdown equity for the given hands"`
	Cases   CasesCmd         `cmd:"" help:"Replay recorded cases and compare win rates"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("equity-odds"),
		kong.Description("Texas hold'em showdown equity calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
