package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.POST("/dashboard/refresh", func(c echo.Context) error {
		return c.NoContent(http.StatusSeeOther)
	}, RateLimiter())

	refresh := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/dashboard/refresh", nil)
		req.RemoteAddr = ip
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows requests within the limit", func(t *testing.T) {
		rec := refresh("192.0.2.1:1234")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("blocks requests exceeding the limit", func(t *testing.T) {
		const limit = 10
		for i := 0; i < limit; i++ {
			rec := refresh("192.0.2.2:1234")
			require.Equal(t, http.StatusSeeOther, rec.Code, "request %d should be allowed", i+1)
		}

		rec := refresh("192.0.2.2:1234")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Too many requests")
	})

	t.Run("limits are tracked per client", func(t *testing.T) {
		rec := refresh("192.0.2.3:1234")
		assert.Equal(t, http.StatusSeeOther, rec.Code, "a fresh client must not inherit another client's count")
	})
}
