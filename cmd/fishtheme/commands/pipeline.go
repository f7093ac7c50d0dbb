package commands

import (
	"fmt"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/markdown/pipeline"
)

// PipelineCmd implements the 'pipeline' command.
type PipelineCmd struct {
	Format   string `short:"f" help:"Output format: text, mermaid, dot, json" default:"text" enum:"text,mermaid,dot,json"`
	Output   string `short:"o" help:"Output file path (optional, prints to stdout if not specified)"`
	List     bool   `short:"l" help:"List available formats and exit"`
	Defaults bool   `help:"Use default markdown settings instead of the options file"`
	Check    bool   `help:"Validate stage ordering and print the result"`
}

func (p *PipelineCmd) Run(g *Global, root *CLI) error {
	out := g.out()
	if p.List {
		_, _ = fmt.Fprintln(out, "Available visualization formats:")
		_, _ = fmt.Fprintln(out)
		for _, format := range pipeline.SupportedFormats() {
			_, _ = fmt.Fprintf(out, "  %-10s %s\n", format, pipeline.FormatDescription(format))
		}
		return nil
	}

	var cfg *config.ThemeConfig
	if !p.Defaults {
		options, err := config.LoadOptions(root.Config)
		if err != nil {
			return err
		}
		if cfg, err = config.Parse(options["config"]); err != nil {
			return err
		}
	}
	pl := pipeline.Build(cfg)

	if p.Check {
		result := pipeline.Validate(pl)
		_, _ = fmt.Fprint(out, pipeline.PrintValidationResult(result))
		if err := result.Err(); err != nil {
			return err
		}
	}

	rendered, err := pipeline.Visualize(pl, pipeline.VisualizationFormat(p.Format))
	if err != nil {
		return err
	}
	return writeOutput(out, p.Output, []byte(rendered), g.logger())
}
