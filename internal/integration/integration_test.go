package integration

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/host"
	"git.home.luguber.info/inful/fishtheme/internal/markdown/pipeline"
	"git.home.luguber.info/inful/fishtheme/internal/metrics"
	"git.home.luguber.info/inful/fishtheme/internal/theme"
)

type countingRecorder struct {
	metrics.NoopRecorder
	outcomes     []metrics.OutcomeLabel
	validations  []metrics.ResultLabel
	siteWarnings int
}

func (r *countingRecorder) IncCompositionOutcome(o metrics.OutcomeLabel) {
	r.outcomes = append(r.outcomes, o)
}
func (r *countingRecorder) IncValidationResult(v metrics.ResultLabel) {
	r.validations = append(r.validations, v)
}
func (r *countingRecorder) IncSiteWarning() { r.siteWarnings++ }

func minimalOptions() map[string]any {
	return map[string]any{
		"config": map[string]any{
			"lang":  "en",
			"title": "T",
			"side":  map[string]any{"title": "S", "sub": "s", "bio": "b"},
		},
	}
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestComposeEndToEnd(t *testing.T) {
	var logs bytes.Buffer
	rec := &countingRecorder{}

	comp, err := Compose(minimalOptions(),
		WithWorkDir(t.TempDir()),
		WithLogger(quietLogger(&logs)),
		WithRecorder(rec))
	require.NoError(t, err)
	require.NotNil(t, comp.Integration)
	assert.Equal(t, theme.Name, comp.Integration.Name)
	assert.NotEmpty(t, comp.ID)

	assert.Equal(t, 2, comp.Integration.Hooks.Len(host.HookConfigSetup))
	assert.Equal(t, 1, comp.Integration.Hooks.Len(host.HookConfigDone))

	cfg, err := host.NewRunner(nil, quietLogger(&logs), comp.Integration).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, pipeline.ThemePair{Light: "vitesse-light", Dark: "catppuccin-frappe"}, cfg.Markdown.Highlighter.Themes)
	assert.Equal(t, []string{
		"remark-component-embed",
		"remark-toc",
		"remark-math",
		"remark-reading-time",
		"remark-github-admonitions-to-directives",
		"remark-directive",
		"remark-directive-rehype",
	}, pipeline.Names(cfg.Markdown.PreParse))
	assert.Len(t, cfg.Markdown.Highlighter.Transformers, 11)
	assert.Len(t, cfg.Markdown.PostParse, 5)
	assert.Equal(t, "always", cfg.Build.InlineStylesheets)
	assert.Equal(t, 51200, cfg.Bundler.AssetsInlineLimit)
	assert.Equal(t, []string{theme.NoMatchStyle}, cfg.Imports[theme.ImportUserCustomStyle])
	assert.Equal(t, []string{theme.Name, "icon", "pagefind", "sitemap"}, cfg.Integrations)

	assert.Contains(t, logs.String(), SiteMissingWarning)
	assert.Contains(t, logs.String(), "composition_id="+comp.ID)
	assert.Equal(t, 1, rec.siteWarnings)
	assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeSuccess}, rec.outcomes)
	assert.Equal(t, []metrics.ResultLabel{metrics.ResultSuccess}, rec.validations)
}

func TestComposeNoSiteWarningWhenSiteSet(t *testing.T) {
	var logs bytes.Buffer
	in, err := New(minimalOptions(), WithWorkDir(t.TempDir()), WithLogger(quietLogger(&logs)))
	require.NoError(t, err)

	_, err = host.NewRunner(&host.Config{Site: "https://example.org"}, quietLogger(&logs), in).Run(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), SiteMissingWarning)
}

func TestComposeMissingConfig(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]any
	}{
		{"nil options", nil},
		{"no config key", map[string]any{"overrides": map[string]any{}}},
		{"nil config", map[string]any{"config": nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var diag bytes.Buffer
			rec := &countingRecorder{}
			_, err := New(tt.options, WithDiagnostics(&diag), WithLogger(quietLogger(&bytes.Buffer{})), WithRecorder(rec))

			require.Error(t, err)
			assert.True(t, stderrors.Is(err, ErrConfigMissing))
			ce, ok := errors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, errors.CategoryConfig, ce.Category())
			assert.True(t, ce.IsFatal())

			want := "No Fish Config Found\n" +
				"Please add config to your theme options file, you can find the example in `" + config.ExampleDocsURL + "`\n" +
				"Here is an example:\n" +
				config.ExampleYAML
			assert.Equal(t, want, diag.String())
			assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeConfigMissing}, rec.outcomes)
		})
	}
}

func TestComposeInvalidConfig(t *testing.T) {
	options := minimalOptions()
	delete(options["config"].(map[string]any), "title")
	rec := &countingRecorder{}

	_, err := New(options, WithWorkDir(t.TempDir()), WithLogger(quietLogger(&bytes.Buffer{})), WithRecorder(rec))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	fields := config.FieldErrors(err)
	require.NotEmpty(t, fields)
	assert.Equal(t, "title", fields[0].Path)
	assert.Equal(t, []metrics.OutcomeLabel{metrics.OutcomeInvalid}, rec.outcomes)
	assert.Equal(t, []metrics.ResultLabel{metrics.ResultFatal}, rec.validations)
}

func TestComposeUnknownOverrideFails(t *testing.T) {
	options := minimalOptions()
	options["overrides"] = map[string]any{"sidebar": "./x.astro"}

	_, err := New(options, WithWorkDir(t.TempDir()), WithLogger(quietLogger(&bytes.Buffer{})))
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestComposeWarningsAreLogged(t *testing.T) {
	var logs bytes.Buffer
	options := minimalOptions()
	options["config"].(map[string]any)["colour"] = "red"

	comp, err := Compose(options, WithWorkDir(t.TempDir()), WithLogger(quietLogger(&logs)))
	require.NoError(t, err)
	require.NotEmpty(t, comp.Warnings)
	assert.Contains(t, logs.String(), "colour")
}

func TestComposePicksUpCustomStylesheet(t *testing.T) {
	dir := t.TempDir()
	writeStylesheet(t, dir)

	options := minimalOptions()
	in, err := New(options, WithWorkDir(dir), WithLogger(quietLogger(&bytes.Buffer{})))
	require.NoError(t, err)

	overrides := options["overrides"].(map[string]any)
	assert.Equal(t, []any{CustomStylePath}, overrides["userCustomStyle"])

	cfg, err := host.NewRunner(nil, quietLogger(&bytes.Buffer{}), in).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{CustomStylePath}, cfg.Imports[theme.ImportUserCustomStyle])
}

func writeStylesheet(t *testing.T, dir string) {
	t.Helper()
	path := filepath.Join(dir, CustomStylePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("body{}"), 0o644))
}

func TestWriteMissingConfigOrder(t *testing.T) {
	var buf bytes.Buffer
	WriteMissingConfig(&buf)
	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "No Fish Config Found", lines[0])
	assert.Contains(t, lines[1], config.ExampleDocsURL)
	assert.Equal(t, "Here is an example:", lines[2])
	assert.Equal(t, "config:", lines[3])
}
