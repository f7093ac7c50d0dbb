// Package commands implements the fishtheme subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// Global carries shared state into subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
	Err    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Theme options file (.yaml, .yml, .toml or .json)" default:"fish.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate the theme options file"`
	Compose  ComposeCmd  `cmd:"" help:"Compose the theme integration and print the resulting host config"`
	Pipeline PipelineCmd `cmd:"" help:"Visualize the markdown pipeline (text, mermaid, dot, json)"`
	Schema   SchemaCmd   `cmd:"" help:"Print the JSON Schema of the options file"`
	Licenses LicensesCmd `cmd:"" help:"List accepted SPDX license identifiers"`
	Init     InitCmd     `cmd:"" help:"Write an example options file"`
	Watch    WatchCmd    `cmd:"" help:"Recompose the theme whenever the options file or custom stylesheet changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	if g != nil {
		g.Logger = logger
	}
	return nil
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) errOut() io.Writer {
	if g == nil || g.Err == nil {
		return os.Stderr
	}
	return g.Err
}

// encode writes v as YAML or JSON.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode JSON output").Build()
		}
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode YAML output").Build()
		}
		if err := enc.Close(); err != nil {
			return errors.WrapError(err, errors.CategoryInternal, "failed to encode YAML output").Build()
		}
	default:
		return errors.ValidationError(fmt.Sprintf("unsupported output format %q", format)).Build()
	}
	return nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte, logger *slog.Logger) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write output file").
			WithContext("path", path).
			Build()
	}
	logger.Info("Output written", "file", path)
	return nil
}
