package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("intake-test")

	m.ObserveHTTP("GET", "/api/v1/steps/{step}/schema", "200", 10*time.Millisecond)
	m.ObserveSubmit("adres", "ok")
	m.ObserveSubmit("adres", "ok")
	m.ObserveStoreOp("memory", "set", "ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StepSubmitsTotal.WithLabelValues("adres", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowStoreOpsTotal.WithLabelValues("memory", "set", "ok")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("intake-test")
	m.ObserveSubmit("planning", "COVERAGE_ERROR")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "intake_step_submits_total")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
