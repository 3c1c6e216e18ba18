// Package metrics exposes Prometheus instrumentation of use cases.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/rest"
	"github.com/swaggest/usecase"
)

const namespace = "mockva"

// Collector keeps service metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	docs     prometheus.Gauge
}

// NewCollector creates metrics collector with process and Go runtime metrics.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(reg)

	return &Collector{
		registry: reg,
		requests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usecase_requests_total",
			Help:      "Use case interactions by result status.",
		}, []string{"usecase", "status"}),
		duration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "usecase_duration_seconds",
			Help:      "Use case interaction latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"usecase"}),
		docs: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "apidocs_viewer_ready",
			Help:      "API docs viewer is bootstrapped.",
		}),
	}
}

// Registry returns collector registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves metrics in exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// DocsReady marks API docs viewer as bootstrapped.
func (c *Collector) DocsReady() {
	c.docs.Set(1)
}

// UseCaseMiddleware counts and times use case interactions.
func (c *Collector) UseCaseMiddleware() usecase.Middleware {
	return usecase.MiddlewareFunc(func(next usecase.Interactor) usecase.Interactor {
		var (
			hasName usecase.HasName
			name    = "unknown"
		)

		if usecase.As(next, &hasName) {
			name = hasName.Name()
		}

		return usecase.Interact(func(ctx context.Context, input, output any) error {
			start := time.Now()
			err := next.Interact(ctx, input, output)

			c.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
			c.requests.WithLabelValues(name, resultStatus(output, err)).Inc()

			return err
		})
	})
}

// resultStatus is an HTTP status of interaction, output may declare its own success status.
func resultStatus(output any, err error) string {
	if err == nil {
		if o, ok := output.(rest.OutputWithHTTPStatus); ok {
			return strconv.Itoa(o.HTTPStatus())
		}

		return strconv.Itoa(http.StatusOK)
	}

	code, _ := rest.Err(err)

	return strconv.Itoa(code)
}
