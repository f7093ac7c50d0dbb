package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "fishtheme"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once                sync.Once
	compositionDuration prom.Histogram
	compositionOutcomes *prom.CounterVec
	validationResults   *prom.CounterVec
	hookDuration        *prom.HistogramVec
	siteWarnings        prom.Counter
	reloads             *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.compositionDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "composition_duration_seconds",
			Help:      "Duration of theme integration compositions",
			Buckets:   prom.DefBuckets,
		})
		pr.compositionOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "composition_outcomes_total",
			Help:      "Composition outcomes by final status",
		}, []string{"outcome"})
		pr.validationResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_results_total",
			Help:      "Theme config validation results",
		}, []string{"result"})
		pr.hookDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "hook_duration_seconds",
			Help:      "Duration of lifecycle hook chains",
			Buckets:   prom.DefBuckets,
		}, []string{"hook"})
		pr.siteWarnings = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "site_missing_warnings_total",
			Help:      "Count of config:done runs without a site URL",
		})
		pr.reloads = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Watch triggered recompositions by result",
		}, []string{"result"})
		reg.MustRegister(pr.compositionDuration, pr.compositionOutcomes, pr.validationResults,
			pr.hookDuration, pr.siteWarnings, pr.reloads)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveCompositionDuration(d time.Duration) {
	if p == nil || p.compositionDuration == nil {
		return
	}
	p.compositionDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncCompositionOutcome(outcome OutcomeLabel) {
	if p == nil || p.compositionOutcomes == nil {
		return
	}
	p.compositionOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncValidationResult(result ResultLabel) {
	if p == nil || p.validationResults == nil {
		return
	}
	p.validationResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveHookDuration(hook string, d time.Duration) {
	if p == nil || p.hookDuration == nil {
		return
	}
	p.hookDuration.WithLabelValues(hook).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncSiteWarning() {
	if p == nil || p.siteWarnings == nil {
		return
	}
	p.siteWarnings.Inc()
}

func (p *PrometheusRecorder) IncReload(success bool) {
	if p == nil || p.reloads == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.reloads.WithLabelValues(res).Inc()
}
