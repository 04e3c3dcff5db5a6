package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRoutePatternPrefersChiPattern(t *testing.T) {
	req := withRoutePattern(httptest.NewRequest(http.MethodGet, "/participants/abc", nil), "/participants/{participant_id}")
	require.Equal(t, "/participants/{participant_id}", routePattern(req))

	require.Equal(t, "/custom", routePattern(httptest.NewRequest(http.MethodGet, "/custom", nil)))
	require.Equal(t, "/", routePattern(nil))
}

func TestMetricsMiddlewareLabelsByPattern(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	pattern := "/participants/{participant_id}"
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, pattern, "404"))

	req := withRoutePattern(httptest.NewRequest(http.MethodGet, "/participants/missing", nil), pattern)
	MetricsMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, pattern, "404"))
	require.InDelta(t, 1, after-before, 0.0001)
}
