// Package observability holds the Prometheus metrics of the API.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/sony/gobreaker"
)

// Metrics holds all Prometheus metrics. A nil *Metrics records nothing.
type Metrics struct {
	// Registry owns the metrics below and backs the /metrics endpoint
	Registry *prometheus.Registry

	httpDuration     *prometheus.HistogramVec
	proposalsCreated prometheus.Counter
	contractsDerived *prometheus.CounterVec
	numberingRetries *prometheus.CounterVec
	documents        *prometheus.CounterVec
	jobs             *prometheus.CounterVec
	breakerState     *prometheus.GaugeVec
}

// NewMetrics registers every metric in a private registry, so calling it
// more than once (tests) never panics on duplicate collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contratus_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		proposalsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "contratus_proposals_created_total",
				Help: "Total proposals created.",
			},
		),
		contractsDerived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contratus_contracts_derived_total",
				Help: "Contract derivations by outcome (created or existing).",
			},
			[]string{"outcome"},
		),
		numberingRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contratus_numbering_retries_total",
				Help: "Transactions retried after a numbering conflict.",
			},
			[]string{"entity"},
		),
		documents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contratus_documents_total",
				Help: "PDF documents rendered by kind and result.",
			},
			[]string{"kind", "result"},
		),
		jobs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contratus_jobs_total",
				Help: "Scheduled job runs by job and result.",
			},
			[]string{"job", "result"},
		),
		breakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "contratus_circuit_breaker_state",
				Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
			},
			[]string{"name"},
		),
	}
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// IncProposalCreated counts a new proposal
func (m *Metrics) IncProposalCreated() {
	if m == nil {
		return
	}
	m.proposalsCreated.Inc()
}

// IncContractDerived counts a derivation; created is false when the
// proposal already had a contract.
func (m *Metrics) IncContractDerived(created bool) {
	if m == nil {
		return
	}
	outcome := "existing"
	if created {
		outcome = "created"
	}
	m.contractsDerived.WithLabelValues(outcome).Inc()
}

// IncNumberingRetry counts a retried numbering transaction
func (m *Metrics) IncNumberingRetry(entity string) {
	if m == nil {
		return
	}
	m.numberingRetries.WithLabelValues(entity).Inc()
}

// IncDocument counts a rendered or failed document
func (m *Metrics) IncDocument(kind string, err error) {
	if m == nil {
		return
	}
	m.documents.WithLabelValues(kind, result(err)).Inc()
}

// IncJob counts a scheduled job run
func (m *Metrics) IncJob(job string, err error) {
	if m == nil {
		return
	}
	m.jobs.WithLabelValues(job, result(err)).Inc()
}

// BreakerStateChanged is a gobreaker OnStateChange hook
func (m *Metrics) BreakerStateChanged(name string, _, to gobreaker.State) {
	if m == nil {
		return
	}
	var v float64
	switch to {
	case gobreaker.StateHalfOpen:
		v = 1
	case gobreaker.StateOpen:
		v = 2
	}
	m.breakerState.WithLabelValues(name).Set(v)
}

// DocumentCount returns how many documents of kind ended with result
func (m *Metrics) DocumentCount(kind, result string) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.documents.WithLabelValues(kind, result))
}

// JobCount returns how many runs of job ended with result
func (m *Metrics) JobCount(job, result string) float64 {
	if m == nil {
		return 0
	}
	return counterValue(m.jobs.WithLabelValues(job, result))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// counterValue reads the current value of a counter
func counterValue(c prometheus.Counter) float64 {
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		return 0
	}
	if metric.Counter != nil && metric.Counter.Value != nil {
		return *metric.Counter.Value
	}
	return 0
}
