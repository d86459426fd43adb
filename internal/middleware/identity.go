package middleware

// identity.go holds the shared identity helper for middleware that keys
// per-caller state (currently the rate limiter). Authenticated callers
// are keyed by account ID, everyone else by "guest" plus client IP.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// callerKey returns a stable identifier for the requester: the user_id
// set by JWTAuth when present, otherwise "guest".
func callerKey(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		return fmt.Sprint(v)
	}
	return "guest"
}
