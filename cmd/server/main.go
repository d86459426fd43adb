package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"     // loads .env files into the environment
	"github.com/labstack/echo/v4"  // Echo web framework
	"github.com/redis/go-redis/v9" // Redis client for cache and rate limiting

	"github.com/iliyamo/f1-ticket-booking/internal/booking"
	"github.com/iliyamo/f1-ticket-booking/internal/catalog"
	"github.com/iliyamo/f1-ticket-booking/internal/config"
	"github.com/iliyamo/f1-ticket-booking/internal/database"
	"github.com/iliyamo/f1-ticket-booking/internal/handler"
	"github.com/iliyamo/f1-ticket-booking/internal/middleware"
	"github.com/iliyamo/f1-ticket-booking/internal/queue"
	"github.com/iliyamo/f1-ticket-booking/internal/repository"
	"github.com/iliyamo/f1-ticket-booking/internal/router"
	queue_publisher "github.com/iliyamo/f1-ticket-booking/internal/service"
	"github.com/iliyamo/f1-ticket-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	st := buildStore(cfg)
	engine := booking.NewEngine(st, cfg.RateINRUSD, cfg.BookMaxRetries)

	var rdb *redis.Client
	if rdb = config.NewRedisClient(); rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	e := echo.New()
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	authH := handler.NewAuthHandler(cfg, st)
	catH := handler.NewCatalogHandler(st, cfg.RateINRUSD)
	bookH := handler.NewBookingHandler(st, engine)
	bookH.Publish = queue_publisher.PublishTicketIssued

	router.RegisterRoutes(e, catH, config.LoadCacheConfig(), rdb)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBooking(e, bookH, cfg.JWTSecret)

	// Issued-ticket log consumer; runs its own reconnect loop.
	go queue.StartTicketConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.StoreBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// buildStore constructs the configured backend: MySQL with schema and
// catalog seeding, or the in-memory store rebuilt from the seed catalog
// on every run.
func buildStore(cfg config.Config) store.Store {
	switch cfg.StoreBackend {
	case "memory":
		log.Println("using in-memory store; state resets on restart")
		return store.NewMemory(catalog.Events())
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		if err := database.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		return repository.New(db)
	default:
		log.Fatalf("unknown STORE_BACKEND %q (want mysql or memory)", cfg.StoreBackend)
		return nil
	}
}
