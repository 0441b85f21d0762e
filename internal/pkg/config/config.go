package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that must differ between environments, security settings
// - default: Values common across all environments (timezone, capacity, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Ledger  LedgerConfig
	CORS    CORSConfig
	Log     LogConfig
	Display DisplayConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type LedgerConfig struct {
	MaxSeats       int           `envconfig:"LEDGER_MAX_SEATS" default:"50"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
	SweepInterval  time.Duration `envconfig:"IDEMPOTENCY_SWEEP_INTERVAL" default:"10m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// DisplayConfig controls the human-readable check-in/check-out strings in responses.
type DisplayConfig struct {
	TimeZone       string `envconfig:"DISPLAY_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"DISPLAY_TIMEZONE_OFFSET" default:"0"`
	TimeFormat     string `envconfig:"DISPLAY_TIME_FORMAT" default:"15:04:05"`
}

func (c DisplayConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

func (c Config) Validate() error {
	if c.Ledger.MaxSeats <= 0 {
		return fmt.Errorf("LEDGER_MAX_SEATS must be positive, got %d", c.Ledger.MaxSeats)
	}
	if c.Ledger.IdempotencyTTL <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL must be positive, got %s", c.Ledger.IdempotencyTTL)
	}
	if c.Ledger.SweepInterval <= 0 {
		return fmt.Errorf("IDEMPOTENCY_SWEEP_INTERVAL must be positive, got %s", c.Ledger.SweepInterval)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: time.Second,
		},
		Ledger: LedgerConfig{
			MaxSeats:       50,
			IdempotencyTTL: time.Hour,
			SweepInterval:  time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Idempotency-Key"},
			ExposeHeaders: []string{"Content-Length", "Location"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Display: DisplayConfig{
			TimeZone:   "UTC",
			TimeFormat: "15:04:05",
		},
	}
}
