package commands

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/integration"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLIWithStderr(t, args...)
	return out, err
}

func runCLIWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cli := &CLI{}
	g := &Global{Out: &out, Err: &errOut, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	parser, err := kong.New(cli,
		kong.Name("fishtheme"),
		kong.Vars{"version": "test"},
		kong.Bind(g),
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	err = ctx.Run(cli)
	return out.String(), errOut.String(), err
}

func initOptions(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fish.yaml")
	_, err := runCLI(t, "-c", path, "init")
	require.NoError(t, err)
	return path
}

func TestInitWritesExample(t *testing.T) {
	path := initOptions(t)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.ExampleYAML, string(data))

	_, err = runCLI(t, "-c", path, "init")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))

	out, err := runCLI(t, "-c", path, "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "initialized successfully")
}

func TestInitRejectsNonYAML(t *testing.T) {
	_, err := runCLI(t, "-c", filepath.Join(t.TempDir(), "fish.toml"), "init")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	path := initOptions(t)
	out, err := runCLI(t, "-c", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "theme options are valid (0 warnings)")
}

func TestValidateStrictWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fish.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config.ExampleYAML+"  colour: red\n"), 0o644))

	out, err := runCLI(t, "-c", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: ignoring unknown key colour")

	_, err = runCLI(t, "-c", path, "validate", "--strict")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestValidateFailures(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.yaml")
	require.NoError(t, os.WriteFile(missing, []byte("overrides: {}\n"), 0o644))
	_, stderr, err := runCLIWithStderr(t, "-c", missing, "validate")
	assert.True(t, stderrors.Is(err, integration.ErrConfigMissing))
	var guided bytes.Buffer
	integration.WriteMissingConfig(&guided)
	assert.Equal(t, guided.String(), stderr)

	_, composeStderr, err := runCLIWithStderr(t, "-c", missing, "compose", "--workdir", dir)
	assert.True(t, stderrors.Is(err, integration.ErrConfigMissing))
	assert.Equal(t, stderr, composeStderr)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"config":{"lang":"en","side":{"title":"S","sub":"s","bio":"b"}}}`), 0o644))
	_, err = runCLI(t, "-c", invalid, "validate")
	require.Error(t, err)
	fields := config.FieldErrors(err)
	require.NotEmpty(t, fields)
	assert.Equal(t, "title", fields[0].Path)

	_, err = runCLI(t, "-c", filepath.Join(dir, "absent.yaml"), "validate")
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestComposeJSON(t *testing.T) {
	path := initOptions(t)
	out, err := runCLI(t, "-c", path, "compose", "--format", "json", "--workdir", t.TempDir(), "--site", "https://blog.example")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	hostCfg := decoded["host"].(map[string]any)
	assert.Equal(t, "https://blog.example", hostCfg["site"])
	assert.Equal(t, "always", hostCfg["build"].(map[string]any)["inlineStylesheets"])
}

func TestComposeQuery(t *testing.T) {
	path := initOptions(t)
	workDir := t.TempDir()

	tests := []struct {
		query string
		want  string
	}{
		{"host.markdown.highlighter.themes.dark", "catppuccin-frappe"},
		{"host.markdown.preParse.#", "7"},
		{"host.bundler.assetsInlineLimit", "51200"},
		{"theme.side.toc.title", "Table of contents"},
		{"integration.name", "fish"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			out, err := runCLI(t, "-c", path, "compose", "--workdir", workDir, "--query", tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}

	_, err := runCLI(t, "-c", path, "compose", "--workdir", workDir, "--query", "host.nope")
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestComposeYAML(t *testing.T) {
	path := initOptions(t)
	out, err := runCLI(t, "-c", path, "compose", "--workdir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "inlineStylesheets: always")
	assert.Contains(t, out, "rehype-autolink-headings")
}

func TestPipelineCommand(t *testing.T) {
	out, err := runCLI(t, "pipeline", "--defaults", "--format", "mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "rehype-slug")

	out, err = runCLI(t, "pipeline", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "mermaid")

	out, err = runCLI(t, "pipeline", "--defaults", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "transformer-copy-button")

	target := filepath.Join(t.TempDir(), "pipeline.dot")
	_, err = runCLI(t, "pipeline", "--defaults", "-f", "dot", "-o", target)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph")
}

func TestSchemaCommand(t *testing.T) {
	out, err := runCLI(t, "schema")
	require.NoError(t, err)
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "$schema")
}

func TestLicensesCommand(t *testing.T) {
	out, err := runCLI(t, "licenses", "--filter", "apache")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "Apache-2.0")
	for _, l := range lines {
		assert.Contains(t, strings.ToLower(l), "apache")
	}
}

func TestWatchReturnsOnCancel(t *testing.T) {
	path := initOptions(t)
	g := &Global{Out: io.Discard, Err: io.Discard, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	cmd := &WatchCmd{WorkDir: t.TempDir(), Debounce: 10 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.run(ctx, g, &CLI{Config: path}) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
