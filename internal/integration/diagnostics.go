package integration

import (
	"fmt"
	"io"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// ErrConfigMissing is returned when the options carry no config.
var ErrConfigMissing = errors.ConfigError("No Fish Config Found").
	Fatal().
	WithContext(errors.ContextKeyDetails, []string{
		"add a config entry to your theme options, see " + config.ExampleDocsURL,
	}).
	Build()

// WriteMissingConfig prints the guided diagnostic for a missing config to w.
func WriteMissingConfig(w io.Writer) {
	_, _ = fmt.Fprintln(w, "No Fish Config Found")
	_, _ = fmt.Fprintf(w, "Please add config to your theme options file, you can find the example in `%s`\n", config.ExampleDocsURL)
	_, _ = fmt.Fprintln(w, "Here is an example:")
	_, _ = fmt.Fprint(w, config.ExampleYAML)
}

func hasConfig(options map[string]any) bool {
	if options == nil {
		return false
	}
	v, ok := options["config"]
	return ok && v != nil
}
