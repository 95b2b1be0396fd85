//go:build tools

package tools

// Tracks tool dependencies (like templ) that are used by 'go generate' but
// not imported by application code, so 'go mod tidy' keeps them.

import (
	_ "github.com/a-h/templ"
)
