package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/shopspring/decimal"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Money amounts and the conversion rate are
// decimals because they feed the booking engine's arithmetic directly.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	StoreBackend   string // "mysql" (durable) or "memory" (reset per run)
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBName         string // database name
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing

	OpeningBalanceUSD decimal.Decimal // wallet balance granted on registration
	RateINRUSD        decimal.Decimal // fixed INR→USD conversion rate
	BookMaxRetries    int             // attempts before a booking fails as persistence error
}

// Load reads configuration from environment variables. Required variables
// are enforced by must() and missing values cause a fatal exit. Database
// variables are only required for the mysql backend.
func Load() Config {
	cfg := Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		StoreBackend:   getenv("STORE_BACKEND", "mysql"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),

		// 1,000,000 USD opening wallet and the 0.012 INR→USD rate are the
		// project's fixed reference values; both stay overridable.
		OpeningBalanceUSD: mustDecimal("OPENING_BALANCE_USD", "1000000.00"),
		RateINRUSD:        mustDecimal("INR_USD_RATE", "0.012"),
		BookMaxRetries:    atoiDefault(getenv("BOOK_MAX_RETRIES", "3"), 3),
	}
	if cfg.StoreBackend == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// mustDecimal reads an optional decimal variable, falling back to def.
// An unparseable value is a fatal configuration error, not a silent default.
func mustDecimal(key, def string) decimal.Decimal {
	s := getenv(key, def)
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("invalid decimal for %s: %q", key, s)
	}
	return d
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
