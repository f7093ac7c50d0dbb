package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/tidwall/gjson"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/host"
	"git.home.luguber.info/inful/fishtheme/internal/integration"
	"git.home.luguber.info/inful/fishtheme/internal/metrics"
)

// ComposeCmd implements the 'compose' command.
type ComposeCmd struct {
	Site    string `help:"Site URL set on the host config before composing"`
	WorkDir string `name:"workdir" help:"Directory the custom stylesheet path is resolved against" default:"." type:"path"`
	Format  string `short:"f" help:"Output format: yaml, json" default:"yaml" enum:"yaml,json"`
	Query   string `short:"q" help:"Print only the value at this gjson path of the JSON output"`
}

// Output is the printed result of a composition.
type Output struct {
	ID          string              `json:"id" yaml:"id"`
	Host        *host.Config        `json:"host" yaml:"host"`
	Theme       *config.ThemeConfig `json:"theme" yaml:"theme"`
	Integration *host.Integration   `json:"integration" yaml:"integration"`
	Warnings    []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (c *ComposeCmd) Run(g *Global, root *CLI) error {
	out, err := composeFile(context.Background(), root.Config, c.Site, c.WorkDir, g.errOut(), g.logger(), metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	if c.Query != "" {
		return query(g.out(), out, c.Query)
	}
	return encode(g.out(), c.Format, out)
}

// composeFile loads an options file, composes the integration and runs it
// through config:setup and config:done against a fresh host config.
func composeFile(ctx context.Context, path, site, workDir string, diagnostics io.Writer, logger *slog.Logger, recorder metrics.Recorder) (*Output, error) {
	options, err := config.LoadOptions(path)
	if err != nil {
		return nil, err
	}

	comp, err := integration.Compose(options,
		integration.WithDiagnostics(diagnostics),
		integration.WithWorkDir(workDir),
		integration.WithLogger(logger),
		integration.WithRecorder(recorder))
	if err != nil {
		return nil, err
	}

	cfg, err := host.NewRunner(&host.Config{Site: site}, logger, comp.Integration).Run(ctx)
	if err != nil {
		return nil, err
	}

	return &Output{
		ID:          comp.ID,
		Host:        cfg,
		Theme:       comp.Config,
		Integration: comp.Integration,
		Warnings:    comp.Warnings,
	}, nil
}

func query(w io.Writer, v any, path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode JSON output").Build()
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return errors.NewError(errors.CategoryNotFound, "query matched nothing").
			WithContext(errors.ContextKeyDetails, []string{path}).
			Build()
	}
	if res.IsObject() || res.IsArray() {
		_, err = fmt.Fprintln(w, res.Raw)
	} else {
		_, err = fmt.Fprintln(w, res.String())
	}
	return err
}
