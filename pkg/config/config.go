package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvDatabasePassword overrides database.password when set.
const EnvDatabasePassword = "FAVORITES_DATABASE_PASSWORD"

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s" validate:"gt=0"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"favorites" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-full"`
}

// LoggingConfig contains logging settings. A file output path is rotated.
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
	MaxSizeMB  int    `yaml:"max_size_mb" default:"100"`
	MaxBackups int    `yaml:"max_backups" default:"5"`
	MaxAgeDays int    `yaml:"max_age_days" default:"30"`
	Compress   bool   `yaml:"compress"`
}

// AuthConfig configures how the caller address is resolved.
type AuthConfig struct {
	// SignatureMaxAge bounds the age of the timestamp signed in X-Message.
	SignatureMaxAge time.Duration `yaml:"signature_max_age" default:"5m"`
	JWKS            JWKSConfig    `yaml:"jwks"`
}

// JWKSConfig contains JWKS configuration for JWT validation. Disabled when URL is empty.
type JWKSConfig struct {
	URL          string `yaml:"url" validate:"omitempty,url"`
	Issuer       string `yaml:"issuer"`
	AddressClaim string `yaml:"address_claim" default:"sub"`
}

// CORSConfig contains cross-origin settings for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" default:"[\"*\"]"`
	MaxAge         int      `yaml:"max_age" default:"300"`
}

// ItemsConfig configures the item existence oracle.
type ItemsConfig struct {
	URL           string        `yaml:"url" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout" default:"10s"`
	CacheTTL      time.Duration `yaml:"cache_ttl" default:"10m"`
	RateLimit     float64       `yaml:"rate_limit" default:"20"`
	RateBurst     int           `yaml:"rate_burst" default:"10"`
	RetryAttempts uint          `yaml:"retry_attempts" default:"3" validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay" default:"200ms"`
}

// VotingPowerConfig configures the voting power oracle.
type VotingPowerConfig struct {
	URL           string        `yaml:"url" default:"https://score.snapshot.org/api/scores" validate:"required,url"`
	Space         string        `yaml:"space" validate:"required"`
	Network       string        `yaml:"network" default:"1"`
	Strategies    []Strategy    `yaml:"strategies" validate:"required,min=1,dive"`
	Timeout       time.Duration `yaml:"timeout" default:"10s"`
	RateLimit     float64       `yaml:"rate_limit" default:"5"`
	RateBurst     int           `yaml:"rate_burst" default:"5"`
	RetryAttempts uint          `yaml:"retry_attempts" default:"2" validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay" default:"200ms"`
}

// Strategy is one voting power strategy sent to the score API.
type Strategy struct {
	Name    string         `yaml:"name" json:"name" validate:"required"`
	Network string         `yaml:"network" json:"network,omitempty"`
	Params  map[string]any `yaml:"params" json:"params"`
}

// PicksConfig contains paging defaults and the default power threshold of pick queries.
type PicksConfig struct {
	DefaultLimit   int   `yaml:"default_limit" default:"100" validate:"min=1"`
	MaxLimit       int   `yaml:"max_limit" default:"100" validate:"gtefield=DefaultLimit"`
	PowerThreshold int64 `yaml:"power_threshold" default:"1" validate:"min=0"`
}

// MetricsConfig contains Prometheus exposition settings.
type MetricsConfig struct {
	Disabled bool   `yaml:"disabled"`
	Path     string `yaml:"path" default:"/metrics"`
}

// APIServerConfig represents the favorites API server configuration
type APIServerConfig struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Logging     LoggingConfig     `yaml:"logging"`
	Auth        AuthConfig        `yaml:"auth"`
	CORS        CORSConfig        `yaml:"cors"`
	Items       ItemsConfig       `yaml:"items"`
	VotingPower VotingPowerConfig `yaml:"voting_power"`
	Picks       PicksConfig       `yaml:"picks"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(raw)
}

// ParseAPIServer decodes, defaults and validates a YAML document.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}
	if pw := os.Getenv(EnvDatabasePassword); pw != "" {
		cfg.Database.Password = pw
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
