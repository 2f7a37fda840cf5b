package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New()
	m.DocumentCreated("user")
	m.DocumentCreated("user")
	m.ObserveRequest(http.MethodGet, "/api/users/:id", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DocumentsCreated.WithLabelValues("user")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestLatency))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `documents_created_total{resource="user"} 2`)
	assert.Contains(t, rec.Body.String(), `route="/api/users/:id"`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.DocumentCreated("user")
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
}
