package commands

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/fishtheme/internal/config"
)

// LicensesCmd implements the 'licenses' command.
type LicensesCmd struct {
	Filter string `short:"f" help:"Only list identifiers containing this text (case-insensitive)"`
}

func (l *LicensesCmd) Run(g *Global) error {
	filter := strings.ToLower(l.Filter)
	for _, id := range config.Licenses() {
		if filter != "" && !strings.Contains(strings.ToLower(id), filter) {
			continue
		}
		if _, err := fmt.Fprintln(g.out(), id); err != nil {
			return err
		}
	}
	return nil
}
