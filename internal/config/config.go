package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration. It is loaded once at startup
// and must be treated as immutable afterwards.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	LinkedInClientID     string `env:"LINKEDIN_CLIENT_ID"`
	LinkedInClientSecret string `env:"LINKEDIN_CLIENT_SECRET"`
	LinkedInRedirectURL  string `env:"LINKEDIN_REDIRECT_URL"`

	// ExchangeViaQuery forces the token exchange onto the query-string GET
	// variant. Compatibility escape hatch for providers whose form-POST
	// exchange is unreliable; leave off otherwise.
	ExchangeViaQuery bool `env:"LINKEDIN_EXCHANGE_VIA_QUERY" envDefault:"false"`

	// PostLoginRedirectURL is honored after sign-in only when it parses as
	// an absolute URL with a host. Anything else falls back to AdminURL.
	PostLoginRedirectURL string `env:"POST_LOGIN_REDIRECT_URL"`

	AdminURL string `env:"ADMIN_URL" envDefault:"/admin"`
	LoginURL string `env:"LOGIN_URL" envDefault:"/login"`

	StateTTL   time.Duration `env:"STATE_TTL" envDefault:"10m"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	DatabaseDSN string `env:"DATABASE_DSN"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.LinkedInClientID == "" || cfg.LinkedInClientSecret == "" || cfg.LinkedInRedirectURL == "" {
		return Config{}, fmt.Errorf("config: linkedin client credentials are required")
	}

	return cfg, nil
}
