package integration

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/host"
	"git.home.luguber.info/inful/fishtheme/internal/logfields"
	"git.home.luguber.info/inful/fishtheme/internal/markdown/pipeline"
	"git.home.luguber.info/inful/fishtheme/internal/metrics"
	"git.home.luguber.info/inful/fishtheme/internal/theme"
)

// Host settings applied on config:setup.
const (
	InlineStylesheets = "always"
	AssetsInlineLimit = 51200
)

// SiteMissingWarning is logged on config:done when the host has no site URL.
const SiteMissingWarning = "the `site` config option is missing"

// Composition is the result of composing the theme integration.
type Composition struct {
	ID          string              `json:"id" yaml:"id"`
	Integration *host.Integration   `json:"integration" yaml:"integration"`
	Config      *config.ThemeConfig `json:"config" yaml:"config"`
	Pipeline    pipeline.Pipeline   `json:"pipeline" yaml:"pipeline"`
	Warnings    []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// New composes the theme integration from options and returns its handle.
func New(options map[string]any, opts ...Option) (*host.Integration, error) {
	c, err := Compose(options, opts...)
	if err != nil {
		return nil, err
	}
	return c.Integration, nil
}

// Compose is New that also returns the validated config and the pipeline.
// options may be modified by the custom stylesheet detection.
func Compose(options map[string]any, opts ...Option) (*Composition, error) {
	c := newComposer(opts)
	id := uuid.NewString()
	logger := c.logger.With(logfields.CompositionID(id))
	start := time.Now()

	comp, outcome, err := c.compose(id, options, logger)
	c.recorder.ObserveCompositionDuration(time.Since(start))
	c.recorder.IncCompositionOutcome(outcome)
	if err != nil {
		return nil, err
	}

	logger.Info("Theme integration composed",
		logfields.Count(len(comp.Pipeline.Stages())),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return comp, nil
}

func (c *composer) compose(id string, options map[string]any, logger *slog.Logger) (*Composition, metrics.OutcomeLabel, error) {
	if !hasConfig(options) {
		WriteMissingConfig(c.diagnostics)
		return nil, metrics.OutcomeConfigMissing, ErrConfigMissing
	}

	if AddCustomStylesheet(options, c.workDir) {
		logger.Debug("Custom stylesheet found", logfields.Path(CustomStylePath))
	}

	in, err := theme.Provide(options)
	if err != nil {
		logger.Error("Theme provider rejected options", logfields.Error(err))
		return nil, metrics.OutcomeFailed, err
	}

	res, err := config.ParseWithWarnings(options["config"])
	if err != nil {
		c.recorder.IncValidationResult(metrics.ResultFatal)
		logger.Error("Theme config validation failed",
			logfields.Count(len(config.FieldErrors(err))),
			logfields.Error(err))
		return nil, metrics.OutcomeInvalid, err
	}
	if len(res.Warnings) > 0 {
		c.recorder.IncValidationResult(metrics.ResultWarning)
		for _, w := range res.Warnings {
			logger.Warn("Theme config normalized", slog.String("warning", w))
		}
	} else {
		c.recorder.IncValidationResult(metrics.ResultSuccess)
	}

	p := pipeline.Build(res.Config)
	if v := pipeline.Validate(p); !v.Valid {
		return nil, metrics.OutcomeFailed, errors.WrapError(v.Err(), errors.CategoryInternal, "markdown pipeline order is inconsistent").Build()
	}

	in.Hooks.Wrap(host.HookConfigSetup, c.applyPipeline(p))
	in.Hooks.Wrap(host.HookConfigDone, c.checkSite())

	return &Composition{
		ID:          id,
		Integration: in,
		Config:      res.Config,
		Pipeline:    p,
		Warnings:    res.Warnings,
	}, metrics.OutcomeSuccess, nil
}

func (c *composer) applyPipeline(p pipeline.Pipeline) host.HookFunc {
	return func(hp *host.HookParams) (any, error) {
		start := time.Now()
		defer func() { c.recorder.ObserveHookDuration(string(host.HookConfigSetup), time.Since(start)) }()

		return nil, hp.UpdateConfig(host.Config{
			Build:   host.BuildConfig{InlineStylesheets: InlineStylesheets},
			Bundler: host.BundlerConfig{AssetsInlineLimit: AssetsInlineLimit},
			Markdown: host.MarkdownConfig{
				Highlighter: host.HighlighterConfig{
					Themes:       p.Themes,
					Transformers: p.Transformers,
				},
				PreParse:  p.PreParse,
				PostParse: p.PostParse,
			},
		})
	}
}

func (c *composer) checkSite() host.HookFunc {
	return func(hp *host.HookParams) (any, error) {
		start := time.Now()
		defer func() { c.recorder.ObserveHookDuration(string(host.HookConfigDone), time.Since(start)) }()

		if hp.Config == nil || hp.Config.Site == "" {
			hp.Logger.Warn(SiteMissingWarning)
			c.recorder.IncSiteWarning()
		}
		return nil, nil
	}
}
