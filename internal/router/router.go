package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/f1-ticket-booking/internal/config"
	"github.com/iliyamo/f1-ticket-booking/internal/handler"
	"github.com/iliyamo/f1-ticket-booking/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication: the health
// check and the public catalog. Catalog responses go through the Redis
// response cache when one is configured; the catalog is reference data so
// short-TTL caching is safe.
func RegisterRoutes(e *echo.Echo, cat *handler.CatalogHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	cache := middleware.ResponseCache(cacheCfg, rdb)
	e.GET("/v1/events", cat.ListEvents, cache)
	e.GET("/v1/events/:id/areas", cat.ListAreas, cache)
}

// RegisterAuth registers authentication routes and the protected account
// endpoint. Unauthenticated operations live under /v1/auth; /v1/me sits
// behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotating refresh: exchanges the refresh token for a new pair.
	g.POST("/refresh", a.Refresh)
	// Non-rotating: a fresh access token against an existing refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh token in the body, or a bearer token to
	// revoke every session of the account.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterBooking registers the booking endpoints behind JWT auth:
// booking against a seating area and listing the caller's tickets.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.POST("/areas/:id/book", b.Book)
	g.GET("/tickets", b.MyTickets)
}
