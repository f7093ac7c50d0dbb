package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleOptionsParse(t *testing.T) {
	options := ExampleOptions()
	require.Contains(t, options, "config")

	cfg, err := Parse(options["config"])
	require.NoError(t, err)
	assert.Equal(t, "Fish Theme", cfg.Title)
	assert.Equal(t, "en", cfg.Lang)
}

func TestDefaults(t *testing.T) {
	defs := Defaults()
	assert.Equal(t, FontAuto, defs.Font)
	assert.Equal(t, "Home", defs.NavHome.Title)
	assert.Equal(t, "/", defs.NavHome.Link)
	assert.Equal(t, IconShapeStates, defs.NavHome.Icon.Shape)
	assert.Equal(t, "solar:file-text-broken", defs.NavHome.Icon.Default.Name)
	assert.Len(t, defs.Footer, 2)
	assert.Equal(t, "https://github.com/felishh77/astro-fish", defs.Footer[1].Link)
	assert.Equal(t, GiscusMappingPathname, defs.GiscusMapping)
	assert.Equal(t, InputPositionTop, defs.GiscusInput)
	assert.Equal(t, HoverCursorNone, defs.HoverCursor)

	// Each call returns fresh slices.
	defs.Footer[0].Title = "changed"
	assert.Equal(t, "Twitter", DefaultFooter()[0].Title)
}
