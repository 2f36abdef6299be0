// Package metrics exposes Prometheus instrumentation for gateway calls and
// dashboard loads.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metric vectors for the application.
type Metrics struct {
	Registry *prometheus.Registry

	// Gateway metrics
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	// Domain metrics
	LoadsTotal *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a private registry.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		GatewayRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_requests_total",
				Help:      "Total weather API requests by operation and outcome",
			},
			[]string{"op", "outcome"},
		),

		GatewayRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_request_duration_seconds",
				Help:      "Histogram of weather API latencies",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),

		LoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_loads_total",
				Help:      "Dashboard loads by trigger and outcome",
			},
			[]string{"trigger", "outcome"},
		),
	}

	reg.MustRegister(
		m.GatewayRequestsTotal,
		m.GatewayRequestDuration,
		m.LoadsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRequest records one gateway call
func (m *Metrics) ObserveRequest(op string, d time.Duration, err error) {
	m.GatewayRequestsTotal.WithLabelValues(op, outcome(err)).Inc()
	m.GatewayRequestDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveLoad records one dashboard load
func (m *Metrics) ObserveLoad(trigger string, err error) {
	m.LoadsTotal.WithLabelValues(trigger, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics listener on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
