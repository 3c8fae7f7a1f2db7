package client

import (
	"fmt"
	"time"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	methodCallCount metrics.Counter
	methodDuration  metrics.Histogram
}

// NewMetrics registers the contract call metrics for the given subsystem with the default
// Prometheus registry, it must only be called once per subsystem.
func NewMetrics(subsystem string) *Metrics {
	const namespace = "helloworld"

	return &Metrics{
		methodCallCount: kitprometheus.NewCounterFrom(
			stdprometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "method_call_count",
				Help:      "Number of times a contract method has been invoked.",
			}, []string{"method", "error"}),
		methodDuration: kitprometheus.NewSummaryFrom(
			stdprometheus.SummaryOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "method_duration",
				Help:      "How long a contract method call took to complete (in seconds).",
			}, []string{"method", "error"}),
	}
}

func (m *Metrics) MethodCalled(begin time.Time, method string, err error) {
	lvs := []string{"method", method, "error", fmt.Sprint(err != nil)}
	m.methodDuration.With(lvs...).Observe(time.Since(begin).Seconds())
	m.methodCallCount.With(lvs...).Add(1)
}
