package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/fishtheme/internal/integration"
	"git.home.luguber.info/inful/fishtheme/internal/logfields"
	"git.home.luguber.info/inful/fishtheme/internal/metrics"
	"git.home.luguber.info/inful/fishtheme/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Site        string        `help:"Site URL set on the host config before composing"`
	WorkDir     string        `name:"workdir" help:"Directory the custom stylesheet path is resolved against" default:"." type:"path"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
	Debounce    time.Duration `help:"Quiet period before recomposing" default:"500ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	logger := g.logger()

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		srv := w.serveMetrics(reg, logger)
		defer func() {
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	recompose := func(ctx context.Context) error {
		out, err := composeFile(ctx, root.Config, w.Site, w.WorkDir, g.errOut(), logger, recorder)
		recorder.IncReload(err == nil)
		if err != nil {
			return err
		}
		logger.Info("Theme composed",
			logfields.CompositionID(out.ID),
			logfields.Count(len(out.Host.Markdown.PreParse)+len(out.Host.Markdown.PostParse)+len(out.Host.Markdown.Highlighter.Transformers)))
		return nil
	}

	if err := recompose(ctx); err != nil {
		logger.Error("Initial composition failed", logfields.Error(err))
	}

	stylesheet := filepath.Join(w.WorkDir, integration.CustomStylePath)
	watcher, err := watch.New(root.Config, []string{stylesheet}, recompose,
		watch.WithDebounce(w.Debounce),
		watch.WithLogger(logger))
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

func (w *WatchCmd) serveMetrics(reg *prom.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: w.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	logger.Info("Serving metrics", logfields.Addr(w.MetricsAddr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", logfields.Addr(w.MetricsAddr), logfields.Error(err))
		}
	}()
	return srv
}
