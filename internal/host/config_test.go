package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/fishtheme/internal/markdown/pipeline"
)

func TestConfigUpdateOverridesScalars(t *testing.T) {
	cfg := &Config{
		Site:  "https://example.org",
		Build: BuildConfig{InlineStylesheets: "auto", Format: "directory"},
	}

	require.NoError(t, cfg.Update(Config{
		Build:   BuildConfig{InlineStylesheets: "always"},
		Bundler: BundlerConfig{AssetsInlineLimit: 51200},
	}))

	assert.Equal(t, "https://example.org", cfg.Site)
	assert.Equal(t, "always", cfg.Build.InlineStylesheets)
	assert.Equal(t, "directory", cfg.Build.Format)
	assert.Equal(t, 51200, cfg.Bundler.AssetsInlineLimit)
}

func TestConfigUpdateAppendsSlices(t *testing.T) {
	cfg := &Config{
		Integrations: []string{"fish"},
		Markdown: MarkdownConfig{
			PreParse: []pipeline.Stage{{Name: "existing", Kind: pipeline.KindPreParse}},
		},
	}

	require.NoError(t, cfg.Update(Config{
		Integrations: []string{"sitemap"},
		Markdown: MarkdownConfig{
			PreParse: []pipeline.Stage{{Name: "added", Kind: pipeline.KindPreParse}},
		},
	}))

	assert.Equal(t, []string{"fish", "sitemap"}, cfg.Integrations)
	require.Len(t, cfg.Markdown.PreParse, 2)
	assert.Equal(t, "existing", cfg.Markdown.PreParse[0].Name)
	assert.Equal(t, "added", cfg.Markdown.PreParse[1].Name)
}

func TestConfigUpdateAddsImports(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Update(Config{
		Imports: map[string][]string{"virtual:fish/user-css": {"./custom.css"}},
	}))
	assert.Equal(t, []string{"./custom.css"}, cfg.Imports["virtual:fish/user-css"])
	assert.True(t, (&Config{Integrations: []string{"a"}}).HasIntegration("a"))
	assert.False(t, cfg.HasIntegration("a"))
}
