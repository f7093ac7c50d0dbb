package host

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunsSetupThenDone(t *testing.T) {
	var trace []string

	first := NewIntegration("first")
	first.Hooks.Set(HookConfigSetup, func(p *HookParams) (any, error) {
		trace = append(trace, "first:setup")
		return nil, p.UpdateConfig(Config{Build: BuildConfig{InlineStylesheets: "always"}})
	})
	first.Hooks.Set(HookConfigDone, func(p *HookParams) (any, error) {
		trace = append(trace, "first:done:"+p.Config.Build.InlineStylesheets)
		return nil, nil
	})

	second := NewIntegration("second")
	second.Hooks.Set(HookConfigSetup, func(*HookParams) (any, error) {
		trace = append(trace, "second:setup")
		return nil, nil
	})

	r := NewRunner(nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), first, second)
	cfg, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"first:setup", "second:setup", "first:done:always"}, trace)
	assert.Equal(t, []string{"first", "second"}, cfg.Integrations)
	assert.Same(t, cfg, r.Config())
}

func TestRunnerLoggerCarriesIntegration(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	in := NewIntegration("fish")
	in.Hooks.Set(HookConfigDone, func(p *HookParams) (any, error) {
		p.Logger.Warn("site missing")
		return nil, nil
	})

	_, err := NewRunner(&Config{}, logger, in).Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "integration=fish")
	assert.Contains(t, buf.String(), "hook=config:done")
	assert.Contains(t, buf.String(), "site missing")
}

func TestRunnerStopsOnError(t *testing.T) {
	called := false
	bad := NewIntegration("bad")
	bad.Hooks.Set(HookConfigSetup, func(*HookParams) (any, error) {
		return nil, assert.AnError
	})
	after := NewIntegration("after")
	after.Hooks.Set(HookConfigSetup, func(*HookParams) (any, error) {
		called = true
		return nil, nil
	})

	_, err := NewRunner(nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), bad, after).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, called)
}

func TestRunnerHonoursCancellation(t *testing.T) {
	in := NewIntegration("fish")
	in.Hooks.Set(HookConfigSetup, func(*HookParams) (any, error) { return nil, nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(nil, nil, in).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerBuildHooks(t *testing.T) {
	var trace []string
	in := NewIntegration("fish")
	in.Hooks.Set(HookBuildStart, recordingHook(&trace, "start", nil))
	in.Hooks.Set(HookBuildDone, recordingHook(&trace, "done", nil))

	require.NoError(t, NewRunner(nil, nil, in).Build(context.Background()))
	assert.Equal(t, []string{"start", "done"}, trace)
}
