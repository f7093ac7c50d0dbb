package commands

import (
	"fmt"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/integration"
	"git.home.luguber.info/inful/fishtheme/internal/theme"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Strict bool `help:"Treat normalization warnings as errors"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	options, err := config.LoadOptions(root.Config)
	if err != nil {
		return err
	}
	if options["config"] == nil {
		integration.WriteMissingConfig(g.errOut())
		return integration.ErrConfigMissing
	}

	if _, err := theme.ResolveImports(options["overrides"]); err != nil {
		return err
	}

	res, err := config.ParseWithWarnings(options["config"])
	if err != nil {
		return err
	}

	out := g.out()
	for _, w := range res.Warnings {
		_, _ = fmt.Fprintf(out, "warning: %s\n", w)
	}
	if v.Strict && len(res.Warnings) > 0 {
		return config.WarningsError(res.Warnings)
	}
	_, _ = fmt.Fprintf(out, "%s: theme options are valid (%d warnings)\n", root.Config, len(res.Warnings))
	return nil
}
