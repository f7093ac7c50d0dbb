package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing options file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	return RunInit(g, root.Config, i.Force)
}

// RunInit writes the example options file to path.
func RunInit(g *Global, path string, force bool) error {
	out := g.out()
	_, _ = fmt.Fprintf(out, "Writing example options to %s\n", path)

	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("options file already exists").
			WithContext("path", path).
			WithContext(errors.ContextKeyDetails, []string{path + " (use --force to overwrite)"}).
			Build()
	}
	if filepath.Ext(path) != ".yaml" && filepath.Ext(path) != ".yml" {
		return errors.ConfigError("init writes YAML options files").
			WithContext(errors.ContextKeyDetails, []string{path}).
			Build()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create options directory").Build()
		}
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write options file").
			WithContext("path", path).
			Build()
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
