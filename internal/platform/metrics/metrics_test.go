package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ViewsRecorded.Inc()

	assert.NotSame(t, a.Registry, b.Registry)
}

func TestHandler_ExposesDomainMetrics(t *testing.T) {
	m := New()
	m.CatalogLoads.WithLabelValues("ok").Inc()
	m.CatalogSize.Set(14)
	m.AdoptionRequests.WithLabelValues("accepted").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	out := string(body)
	for _, want := range []string{
		`catalog_loads_total{result="ok"} 1`,
		"catalog_pets 14",
		`adoption_requests_total{result="accepted"} 1`,
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(out, want), "missing %q", want)
	}
}
