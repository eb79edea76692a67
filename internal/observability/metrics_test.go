package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncProposalCreated()
	m.IncProposalCreated()
	m.IncContractDerived(true)
	m.IncContractDerived(false)
	m.IncContractDerived(false)
	m.IncDocument("contract", nil)
	m.IncDocument("contract", errors.New("boom"))
	m.IncJob("expire_proposals", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.proposalsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.contractsDerived.WithLabelValues("created")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.contractsDerived.WithLabelValues("existing")))
	assert.Equal(t, float64(1), m.DocumentCount("contract", "ok"))
	assert.Equal(t, float64(1), m.DocumentCount("contract", "error"))
	assert.Equal(t, float64(1), m.JobCount("expire_proposals", "ok"))
	assert.Equal(t, float64(0), m.JobCount("expire_proposals", "error"))
}

func TestMetrics_BreakerState(t *testing.T) {
	m := NewMetrics()

	m.BreakerStateChanged("wkhtmltopdf", gobreaker.StateClosed, gobreaker.StateOpen)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.breakerState.WithLabelValues("wkhtmltopdf")))

	m.BreakerStateChanged("wkhtmltopdf", gobreaker.StateOpen, gobreaker.StateHalfOpen)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.breakerState.WithLabelValues("wkhtmltopdf")))
}

func TestMetrics_HTTPHistogram(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTP("GET", "/api/v1/proposals", 200, 15*time.Millisecond)

	n, err := testutil.GatherAndCount(m.Registry, "contratus_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncProposalCreated()
		m.IncJob("x", nil)
		m.ObserveHTTP("GET", "/", 200, time.Second)
	})
	assert.Zero(t, m.JobCount("x", "ok"))
}

func TestMetrics_NewTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}
