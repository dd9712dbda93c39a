package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func named(name string) HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, name)
	}
}

func do(t *testing.T, r *Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouterMatchesInRegistrationOrder(t *testing.T) {
	r := New(quietLogger())
	r.GET("/api/v1/charts/principles.svg", named("principles-svg"))
	r.GET("/api/v1/charts/regions/*.svg", named("region-svg"))
	r.GET("/api/v1/charts/regions/*", named("region"))
	r.GET("/api/v1/sessions/*/dashboard", named("session-dashboard"))
	r.GET("/api/v1/sessions/*", named("session"))
	r.GET("/swagger/*", named("swagger"))

	cases := map[string]string{
		"/api/v1/charts/principles.svg":     "principles-svg",
		"/api/v1/charts/regions/AMK.svg":    "region-svg",
		"/api/v1/charts/regions/AMK":        "region",
		"/api/v1/sessions/abc/dashboard":    "session-dashboard",
		"/api/v1/sessions/abc":              "session",
		"/swagger/index.html":               "swagger",
		"/swagger/swagger-ui-bundle.js.map": "swagger",
	}
	for path, want := range cases {
		rec := do(t, r, http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, want, rec.Body.String(), path)
	}
}

func TestRouterNotFoundAndMethodNotAllowed(t *testing.T) {
	r := New(quietLogger())
	r.GET("/api/v1/health", named("health"))
	r.DELETE("/api/v1/sessions/*", named("delete"))

	require.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/api/v1/nope").Code)
	require.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodPost, "/api/v1/health").Code)
	require.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodGet, "/api/v1/sessions/abc").Code)
}

func TestMatchWildcardRoute(t *testing.T) {
	require.True(t, matchWildcardRoute("/a/b/c", "/a/*/c"))
	require.False(t, matchWildcardRoute("/a/b/d", "/a/*/c"))
	require.True(t, matchWildcardRoute("/a/b/c/d", "/a/*"))
	require.False(t, matchWildcardRoute("/a/x.png", "/a/*.svg"))
	require.False(t, matchWildcardRoute("/a/.svg", "/a/*.svg"))
}

func TestSegment(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/xyz/dashboard", nil)
	require.Equal(t, "xyz", Segment(req, 3))
	require.Equal(t, "", Segment(req, 9))
}

func TestPathsListsEachPatternOnce(t *testing.T) {
	r := New(quietLogger())
	r.GET("/api/v1/sessions/*", named("get"))
	r.DELETE("/api/v1/sessions/*", named("delete"))
	r.GET("/api/v1/health", named("health"))

	require.Equal(t, []string{"/api/v1/health", "/api/v1/sessions/*"}, r.Paths())
}
