// Package metrics provides observability hooks for theme composition.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection needs no nil checks:
//
//	composer := integration.New(options, integration.WithRecorder(metrics.NoopRecorder{}))
//
// To enable metrics, inject a PrometheusRecorder and serve its registry:
//
//	reg := prometheus.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	http.Handle("/metrics", metrics.HTTPHandler(reg))
//
// The watch command wires both when started with --metrics-addr.
package metrics
