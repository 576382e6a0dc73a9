package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.)
// - default: Values common across all environments (timeouts, storage layout)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Storage StorageConfig
	Backend BackendConfig
	Session SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// StorageConfig selects where cart and ledger snapshots live. "file" keeps
// one JSON document per key under Dir, "sqlite" keeps them in a single
// key/value table, "memory" keeps nothing across restarts.
type StorageConfig struct {
	Driver     string `envconfig:"STORAGE_DRIVER" default:"file"`
	Dir        string `envconfig:"STORAGE_DIR" default:"./.ecocollect"`
	SQLitePath string `envconfig:"STORAGE_SQLITE_PATH" default:"./.ecocollect/state.db"`
}

// BackendConfig points at the remote EcoCollect REST API.
type BackendConfig struct {
	BaseURL          string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout          time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
	BreakerMaxFails  uint32        `envconfig:"BACKEND_BREAKER_MAX_FAILS" default:"5"`
	BreakerOpenFor   time.Duration `envconfig:"BACKEND_BREAKER_OPEN_FOR" default:"30s"`
	BreakerHalfCalls uint32        `envconfig:"BACKEND_BREAKER_HALF_CALLS" default:"2"`
}

type SessionConfig struct {
	CookieDomain string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite     string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"lax"`
	TokenTTL     time.Duration `envconfig:"SESSION_TOKEN_TTL" default:"24h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Backend: BackendConfig{
			BaseURL:          "http://localhost:9999",
			Timeout:          2 * time.Second,
			BreakerMaxFails:  5,
			BreakerOpenFor:   time.Second,
			BreakerHalfCalls: 1,
		},
		Session: SessionConfig{
			SameSite: "lax",
			TokenTTL: time.Hour,
		},
	}
}
