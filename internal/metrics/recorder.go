package metrics

import "time"

// ResultLabel enumerates result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultWarning  ResultLabel = "warning"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// OutcomeLabel enumerates the final status of a composition.
type OutcomeLabel string

const (
	OutcomeSuccess       OutcomeLabel = "success"
	OutcomeConfigMissing OutcomeLabel = "config_missing"
	OutcomeInvalid       OutcomeLabel = "invalid"
	OutcomeFailed        OutcomeLabel = "failed"
)

// Recorder defines observability hooks for composition and lifecycle metrics.
type Recorder interface {
	ObserveCompositionDuration(d time.Duration)
	IncCompositionOutcome(outcome OutcomeLabel)
	IncValidationResult(result ResultLabel)
	ObserveHookDuration(hook string, d time.Duration)
	IncSiteWarning()
	IncReload(success bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveCompositionDuration(time.Duration)  {}
func (NoopRecorder) IncCompositionOutcome(OutcomeLabel)        {}
func (NoopRecorder) IncValidationResult(ResultLabel)           {}
func (NoopRecorder) ObserveHookDuration(string, time.Duration) {}
func (NoopRecorder) IncSiteWarning()                           {}
func (NoopRecorder) IncReload(bool)                            {}
