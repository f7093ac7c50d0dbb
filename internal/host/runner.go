package host

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/fishtheme/internal/logfields"
)

// Runner drives integrations through the lifecycle against one shared config.
type Runner struct {
	config       *Config
	logger       *slog.Logger
	integrations []*Integration
}

// NewRunner creates a runner. A nil config starts from an empty one.
func NewRunner(cfg *Config, logger *slog.Logger, integrations ...*Integration) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{config: cfg, logger: logger, integrations: integrations}
}

// Config returns the shared configuration.
func (r *Runner) Config() *Config {
	return r.config
}

// Run executes config:setup for every integration, then config:done.
func (r *Runner) Run(ctx context.Context) (*Config, error) {
	for _, in := range r.integrations {
		if !r.config.HasIntegration(in.Name) {
			r.config.Integrations = append(r.config.Integrations, in.Name)
		}
	}
	for _, name := range []HookName{HookConfigSetup, HookConfigDone} {
		if err := r.RunHook(ctx, name); err != nil {
			return nil, err
		}
	}
	return r.config, nil
}

// Build executes build:start and build:done for every integration.
func (r *Runner) Build(ctx context.Context) error {
	for _, name := range []HookName{HookBuildStart, HookBuildDone} {
		if err := r.RunHook(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// RunHook invokes one lifecycle hook on every integration in order.
func (r *Runner) RunHook(ctx context.Context, name HookName) error {
	for _, in := range r.integrations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if in.Hooks.Len(name) == 0 {
			continue
		}

		logger := r.logger.With(logfields.Integration(in.Name), logfields.Hook(string(name)))
		params := &HookParams{
			Context:      ctx,
			Config:       r.config,
			Logger:       logger,
			UpdateConfig: r.config.Update,
		}

		start := time.Now()
		if _, err := in.Hooks.Run(name, params); err != nil {
			logger.Error("Lifecycle hook failed", logfields.Error(err))
			return err
		}
		logger.Debug("Lifecycle hook completed",
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	}
	return nil
}
