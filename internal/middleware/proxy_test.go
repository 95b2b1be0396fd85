package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyApp(t *testing.T, allPaths bool) (*echo.Echo, *httptest.Server) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Upstream", "copilot")
		w.Write([]byte("upstream:" + r.URL.Path))
	}))
	t.Cleanup(upstream.Close)

	target, err := url.Parse(upstream.URL)
	require.NoError(t, err)

	e := echo.New()
	e.Use(BackendProxy(target, allPaths))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "dashboard") })
	e.GET("/contracts", func(c echo.Context) error { return c.String(http.StatusOK, "contracts") })
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })

	return e, upstream
}

func TestProxyForwardsAPIRequests(t *testing.T) {
	e, _ := newProxyApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "copilot", rec.Header().Get("X-Upstream"))
	assert.Equal(t, "upstream:/api/dashboard/summary", rec.Body.String())
}

func TestProxyLeavesAppRoutesAlone(t *testing.T) {
	e, _ := newProxyApp(t, false)

	for path, body := range map[string]string{
		"/":          "dashboard",
		"/contracts": "contracts",
		"/health":    "OK",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, body, rec.Body.String(), "path %s", path)
		assert.Empty(t, rec.Header().Get("X-Upstream"), "path %s", path)
	}
}

func TestProxyAllPathsForwardsUnknownRoutes(t *testing.T) {
	e, _ := newProxyApp(t, true)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "upstream:/docs", rec.Body.String())

	// App-owned routes still win.
	req = httptest.NewRequest(http.MethodGet, "/contracts", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "contracts", rec.Body.String())

	// The dashboard keeps the root path.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "dashboard", rec.Body.String())
}
