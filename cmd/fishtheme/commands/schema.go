package commands

import "git.home.luguber.info/inful/fishtheme/internal/config"

// SchemaCmd implements the 'schema' command.
type SchemaCmd struct {
	Output string `short:"o" help:"Output file path (optional, prints to stdout if not specified)"`
}

func (s *SchemaCmd) Run(g *Global) error {
	return writeOutput(g.out(), s.Output, append(config.Schema(), '\n'), g.logger())
}
