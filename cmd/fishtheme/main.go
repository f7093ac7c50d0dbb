package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/fishtheme/cmd/fishtheme/commands"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout, Err: os.Stderr}
	parser := kong.Parse(cli,
		kong.Name("fishtheme"),
		kong.Description("Validate fish theme options and compose the theme integration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := parser.Run(cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
