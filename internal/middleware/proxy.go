package middleware

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// appOwnedPrefixes are the route prefixes served by this application itself.
// The development proxy must never swallow them, even when it is configured
// to forward all paths.
var appOwnedPrefixes = []string{
	"/contracts",
	"/dashboard",
	"/partials",
	"/ws",
	"/static",
	"/health",
	"/metrics",
}

// BackendProxy forwards requests to the copilot backend during local
// development, the same role the dev-server proxy plays for the browser
// build. By default only "/api" requests are forwarded; with allPaths every
// request not owned by the application is forwarded, including "/".
func BackendProxy(target *url.URL, allPaths bool) echo.MiddlewareFunc {
	balancer := middleware.NewRoundRobinBalancer([]*middleware.ProxyTarget{
		{URL: target},
	})

	return middleware.ProxyWithConfig(middleware.ProxyConfig{
		Balancer: balancer,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/api") {
				return false
			}
			if !allPaths {
				return true
			}
			if path == "/" {
				// The dashboard page owns the root path; the backend's
				// root probe goes through the status partial instead.
				return true
			}
			for _, prefix := range appOwnedPrefixes {
				if path == prefix || strings.HasPrefix(path, prefix+"/") {
					return true
				}
			}
			return false
		},
	})
}
