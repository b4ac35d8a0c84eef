package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/kmarens/famsched/core/metrics"
)

// NewSink builds the sink selected by the configuration. With nothing
// enabled a NopSink is returned.
func NewSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	if !cfg.Prometheus.Enabled {
		return coremetrics.NopSink{}, nil
	}
	return NewPromSink()
}

// Serve exposes the default Prometheus registry on the configured
// address. It blocks like http.ListenAndServe.
func Serve(cfg coremetrics.PrometheusConfig) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(cfg.Listen, mux)
}
