// pkg/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at process start and passed into constructors.
// Business logic never reads the environment directly; a changed
// credential requires a restart to take effect.
type Config struct {
	Env      string
	HTTPAddr string

	// Printify upstream
	PrintifyAPIKey  string // bearer credential; never logged in full
	PrintifyShopID  string // optional pre-set shop id; empty -> resolve live per request
	PrintifyBaseURL string
	UpstreamTimeout time.Duration

	// Optional backing services (features degrade cleanly when unset)
	RedisURL    string
	DatabaseURL string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:             env("MERCHSTORE_ENV", "dev"),
		HTTPAddr:        env("STOREFRONT_HTTP_ADDR", ":8080"),
		PrintifyAPIKey:  env("PRINTIFY_API_KEY", ""),
		PrintifyShopID:  env("PRINTIFY_SHOP_ID", ""),
		PrintifyBaseURL: env("PRINTIFY_API_URL", "https://api.printify.com/v1"),
		UpstreamTimeout: envDur("UPSTREAM_TIMEOUT_SEC", 15) * time.Second,
		RedisURL:        env("REDIS_URL", ""),
		DatabaseURL:     env("DATABASE_URL", ""),
	}
	if cfg.PrintifyAPIKey == "" {
		log.Println("[WARN] PRINTIFY_API_KEY not set — catalog endpoints will serve mock data")
	}
	return cfg
}

// CredentialConfigured reports whether a Printify credential is present
// without exposing it.
func (c Config) CredentialConfigured() bool { return c.PrintifyAPIKey != "" }

// CredentialHint returns a bounded prefix of the credential for diagnostics.
// At most six characters are ever surfaced.
func (c Config) CredentialHint() string {
	if c.PrintifyAPIKey == "" {
		return ""
	}
	if len(c.PrintifyAPIKey) <= 6 {
		return c.PrintifyAPIKey[:1] + "..."
	}
	return c.PrintifyAPIKey[:6] + "..."
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDur(k string, def int) time.Duration {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return time.Duration(i)
		}
	}
	return time.Duration(def)
}
