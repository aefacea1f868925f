// Package config handles loading and validating application
// configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration. Every field maps to an
// environment variable via the env:"..." tag; cleanenv applies the
// defaults and enforces env-required constraints.
type Config struct {
	// App
	App AppConfig

	// Registry endpoint
	Registry RegistryConfig

	// Report parameters
	Report ReportConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"APP_NAME" env-default:"student-reports"`
	Environment Environment `env:"APP_ENV" env-default:"development"`
}

// RegistryConfig holds student registry endpoint settings.
type RegistryConfig struct {
	// URL is the full address of the students endpoint. There is no
	// meaningful default, so the app refuses to start without it.
	URL string `env:"REGISTRY_URL" env-required:"true"`

	// RequestTimeout bounds the single HTTP fetch.
	RequestTimeout time.Duration `env:"REGISTRY_REQUEST_TIMEOUT" env-default:"30s"`
}

// ReportConfig holds the parameterized report inputs. Grade and age
// thresholds are fixed by the report definitions and not configurable.
type ReportConfig struct {
	// City names the city for the adult-males report.
	City string `env:"REPORT_CITY" env-default:"Skopje"`

	// NamePrefix is the first-name prefix for the prefix report.
	NamePrefix string `env:"REPORT_NAME_PREFIX" env-default:"B"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	u, err := url.Parse(c.Registry.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "REGISTRY_URL must be an absolute URL")
	}

	if c.Registry.RequestTimeout <= 0 {
		errs = append(errs, "REGISTRY_REQUEST_TIMEOUT must be positive")
	}

	if c.Report.City == "" {
		errs = append(errs, "REPORT_CITY cannot be empty")
	}

	if c.Report.NamePrefix == "" {
		errs = append(errs, "REPORT_NAME_PREFIX cannot be empty")
	}

	switch c.Observability.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, "LOG_FORMAT must be \"text\" or \"json\"")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}
