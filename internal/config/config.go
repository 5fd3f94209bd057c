// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

// RenderConfig carries the renderer inputs the navigation layer may omit.
type RenderConfig struct {
	// ViewportWidth is assumed when the request does not say how wide the
	// client is. The QR size formula runs against this value.
	ViewportWidth int `yaml:"viewport_width"`
	// BackURL is where the back action points when the navigation layer
	// supplies no usable target.
	BackURL string `yaml:"back_url"`
}

type QRConfig struct {
	Level string `yaml:"level"` // low|medium|high|highest
}

// LinksConfig controls signed deep links. With an empty SigningKey the
// service only reads plain query bags.
type LinksConfig struct {
	SigningKey string        `yaml:"signing_key"`
	EncryptKey string        `yaml:"encrypt_key"` // optional: seal bags inside tokens, 16/24/32 bytes
	Required   bool          `yaml:"required"`    // reject requests without a valid token
	MaxAge     time.Duration `yaml:"max_age"`     // extra cap on token lifetime, 0 = exp only
}

type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled"`
	Limit   int           `yaml:"limit"`  // requests per window per client
	Window  time.Duration `yaml:"window"` // fixed window size
}

// RedisConfig is optional: an empty URL keeps rate limiting in-process.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Render    RenderConfig    `yaml:"render"`
	QR        QRConfig        `yaml:"qr"`
	Links     LinksConfig     `yaml:"links"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Runtime   RuntimeConfig   `yaml:"-"`
}

// LoadConfig reads the YAML file at configPath and applies defaults. A
// missing file is not an error, the service is fully functional on
// defaults, but a file that exists and fails to parse is.
func LoadConfig(configPath string, dev bool) (*Config, error) {
	var cfg Config

	b, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// run on defaults
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyDefaults(&cfg)

	// Minimal validation
	if cfg.Links.Required && cfg.Links.SigningKey == "" {
		return nil, errors.New("links.required needs links.signing_key")
	}
	if cfg.Links.EncryptKey != "" && cfg.Links.SigningKey == "" {
		return nil, errors.New("links.encrypt_key needs links.signing_key")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Limit <= 0 {
		return nil, errors.New("rate_limit.limit must be positive when enabled")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Render.ViewportWidth <= 0 {
		cfg.Render.ViewportWidth = 360
	}
	if cfg.Render.BackURL == "" {
		cfg.Render.BackURL = "/"
	}
	if cfg.QR.Level == "" {
		cfg.QR.Level = "medium"
	}
	if cfg.Links.MaxAge < 0 {
		cfg.Links.MaxAge = 0
	}
	if cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = time.Minute
	}
	if cfg.RateLimit.Limit <= 0 && !cfg.RateLimit.Enabled {
		cfg.RateLimit.Limit = 120
	}
}
