package host

import (
	"dario.cat/mergo"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/markdown/pipeline"
)

// Config is the host build configuration that integrations update.
type Config struct {
	// Site is the public site URL.
	Site         string              `json:"site,omitempty" yaml:"site,omitempty"`
	Build        BuildConfig         `json:"build" yaml:"build"`
	Bundler      BundlerConfig       `json:"bundler" yaml:"bundler"`
	Markdown     MarkdownConfig      `json:"markdown" yaml:"markdown"`
	Integrations []string            `json:"integrations,omitempty" yaml:"integrations,omitempty"`
	Imports      map[string][]string `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// BuildConfig controls page output.
type BuildConfig struct {
	// InlineStylesheets is one of "always", "auto" or "never".
	InlineStylesheets string `json:"inlineStylesheets,omitempty" yaml:"inlineStylesheets,omitempty"`
	Format            string `json:"format,omitempty" yaml:"format,omitempty"`
}

// BundlerConfig controls asset bundling.
type BundlerConfig struct {
	// AssetsInlineLimit is the size in bytes below which assets are inlined.
	AssetsInlineLimit int `json:"assetsInlineLimit,omitempty" yaml:"assetsInlineLimit,omitempty"`
}

// MarkdownConfig carries the markdown processing pipeline.
type MarkdownConfig struct {
	Highlighter HighlighterConfig `json:"highlighter" yaml:"highlighter"`
	PreParse    []pipeline.Stage  `json:"preParse,omitempty" yaml:"preParse,omitempty"`
	PostParse   []pipeline.Stage  `json:"postParse,omitempty" yaml:"postParse,omitempty"`
}

// HighlighterConfig configures syntax highlighting.
type HighlighterConfig struct {
	Themes       pipeline.ThemePair `json:"themes" yaml:"themes"`
	Transformers []pipeline.Stage   `json:"transformers,omitempty" yaml:"transformers,omitempty"`
}

// Update deep-merges patch into c. Non-empty patch values override,
// slices are appended and maps are merged key by key.
func (c *Config) Update(patch Config) error {
	if err := mergo.Merge(c, patch, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return errors.WrapError(err, errors.CategoryHost, "failed to update host config").Build()
	}
	return nil
}

// HasIntegration reports whether name is listed in Integrations.
func (c *Config) HasIntegration(name string) bool {
	for _, n := range c.Integrations {
		if n == name {
			return true
		}
	}
	return false
}
