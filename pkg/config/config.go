package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Fallback registry sources.
const (
	FallbackSourceStatic   = "static"
	FallbackSourcePostgres = "postgres"
)

// Config represents the discovery API server configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Morpho    MorphoConfig    `yaml:"morpho"`
	Database  DatabaseConfig  `yaml:"database"`
	Fallback  FallbackConfig  `yaml:"fallback"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Auth      AuthConfig      `yaml:"auth"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"75s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// MorphoConfig contains settings of the upstream vault GraphQL API
type MorphoConfig struct {
	Endpoint  string        `yaml:"endpoint" default:"https://blue-api.morpho.org/graphql" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout" default:"10s" validate:"gt=0"`
	UserAgent string        `yaml:"user_agent" default:"vault-discovery"`
}

// DatabaseConfig contains database connection settings.
// It is only used when the fallback registry is backed by Postgres.
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"vault_discovery"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// FallbackConfig selects the registry consulted when the upstream API is unavailable
type FallbackConfig struct {
	Source string `yaml:"source" default:"static" validate:"oneof=static postgres"`
	// RefreshInterval of zero disables the refresher.
	RefreshInterval time.Duration `yaml:"refresh_interval" default:"15m" validate:"gte=0"`
	Assets          []FallbackAsset `yaml:"assets" validate:"dive"`
}

// FallbackAsset is a (chain, asset) pair kept fresh by the refresher
type FallbackAsset struct {
	Chain string `yaml:"chain" validate:"required"`
	Asset string `yaml:"asset" validate:"required"`
}

// RateLimitConfig contains per client IP rate limiting settings
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" default:"true"`
	RPS     float64 `yaml:"rps" default:"10" validate:"gt=0"`
	Burst   int     `yaml:"burst" default:"20" validate:"gt=0"`
}

// AuthConfig guards the operator endpoints. They are mounted only when
// JWKSURL is set and the fallback registry is backed by Postgres.
type AuthConfig struct {
	JWKSURL  string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

// MetricsConfig contains prometheus exporter settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Host    string `yaml:"host" default:"0.0.0.0"`
	Port    int    `yaml:"port" default:"9090" validate:"min=1,max=65535"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// Load loads configuration from a YAML file. ${VAR} references in the file are
// expanded from the environment before parsing.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes, defaults and validates a YAML configuration document
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration holding only default values
func Default() *Config {
	var cfg Config
	// defaults.Set only fails on malformed tags
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

func validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return err
	}
	if cfg.Fallback.Source == FallbackSourcePostgres {
		if cfg.Database.Host == "" {
			return fmt.Errorf("database.host is required when fallback.source is postgres")
		}
		if cfg.Database.User == "" {
			return fmt.Errorf("database.user is required when fallback.source is postgres")
		}
	}
	return nil
}

// UsesPostgres reports whether the fallback registry is backed by the database
func (c *Config) UsesPostgres() bool {
	return c.Fallback.Source == FallbackSourcePostgres
}

// AdminEnabled reports whether the operator endpoints should be served
func (c *Config) AdminEnabled() bool {
	return c.UsesPostgres() && c.Auth.JWKSURL != ""
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
