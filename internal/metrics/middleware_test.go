package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if c := out.GetCounter(); c != nil {
		return c.GetValue()
	}
	return out.GetGauge().GetValue()
}

func TestMiddleware_LabelsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/things/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := value(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/things/{id}", "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := value(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/things/{id}", "418"))
	assert.Equal(t, float64(2), after-before)
	assert.Equal(t, float64(0), value(t, HTTPRequestsInFlight))
}

func TestMiddleware_WithoutRouter(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	before := value(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain", nil))
	after := value(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "200"))

	assert.Equal(t, float64(1), after-before)
}

func TestMiddleware_UnknownPathsShareALabel(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/known", func(http.ResponseWriter, *http.Request) {})

	before := value(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))
	for _, p := range []string{"/a", "/b/c", "/wp-login.php"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	after := value(t, HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404"))

	assert.Equal(t, float64(3), after-before)
}
