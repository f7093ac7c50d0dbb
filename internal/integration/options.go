package integration

import (
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/fishtheme/internal/metrics"
)

// Option configures a composition.
type Option func(*composer)

// WithDiagnostics sets the writer that receives guided diagnostics.
func WithDiagnostics(w io.Writer) Option {
	return func(c *composer) {
		if w != nil {
			c.diagnostics = w
		}
	}
}

// WithWorkDir sets the directory CustomStylePath is resolved against.
func WithWorkDir(dir string) Option {
	return func(c *composer) {
		if dir != "" {
			c.workDir = dir
		}
	}
}

// WithLogger sets the composition logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *composer) {
		if r != nil {
			c.recorder = r
		}
	}
}

type composer struct {
	diagnostics io.Writer
	workDir     string
	logger      *slog.Logger
	recorder    metrics.Recorder
}

func newComposer(opts []Option) *composer {
	c := &composer{
		diagnostics: os.Stderr,
		workDir:     ".",
		logger:      slog.Default(),
		recorder:    metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
