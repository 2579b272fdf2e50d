// ABOUTME: Configuration loading and parsing for parts-gateway
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete parts-gateway configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Inventory InventoryConfig `yaml:"inventory"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
	Limits    LimitsConfig    `yaml:"limits"`
}

// ServerConfig holds the HTTP listener address.
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// RedisConfig holds the session store connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	SessionTTL time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	SessionTTLRaw string `yaml:"session_ttl"`
}

// InventoryConfig holds the local inventory database path.
type InventoryConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig holds the catalog collaborator settings.
type CatalogConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	APIHost   string `yaml:"api_host"`
	LangID    int    `yaml:"lang_id"`
	CountryID int    `yaml:"country_id"`

	Timeout time.Duration `yaml:"-"`

	TimeoutRaw string `yaml:"timeout"`
}

// AuthConfig holds the static API key for the chat endpoint.
// An empty key disables authentication (local development).
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LimitsConfig bounds listing sizes.
type LimitsConfig struct {
	MaxArticlesPerPage int `yaml:"max_articles_per_page"`
	CategoryLevels     int `yaml:"category_levels"`
}

// Load reads a configuration file from the given path and returns a parsed
// Config. Environment variables in the format ${VAR_NAME} are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

func (c *Config) applyDefaults() {
	if c.Redis.SessionTTL == 0 {
		c.Redis.SessionTTL = 24 * time.Hour
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 30 * time.Second
	}
	if c.Catalog.LangID == 0 {
		c.Catalog.LangID = 4
	}
	if c.Catalog.CountryID == 0 {
		c.Catalog.CountryID = 62
	}
	if c.Limits.MaxArticlesPerPage == 0 {
		c.Limits.MaxArticlesPerPage = 20
	}
	if c.Limits.CategoryLevels == 0 {
		c.Limits.CategoryLevels = 3
	}
}

// Validate checks that all required configuration fields are present.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if c.Inventory.Path == "" {
		return fmt.Errorf("inventory.path is required")
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	return nil
}

func parseDurations(cfg *Config) error {
	var err error

	if cfg.Redis.SessionTTLRaw != "" {
		cfg.Redis.SessionTTL, err = time.ParseDuration(cfg.Redis.SessionTTLRaw)
		if err != nil {
			return fmt.Errorf("parsing session_ttl %q: %w", cfg.Redis.SessionTTLRaw, err)
		}
	}

	if cfg.Catalog.TimeoutRaw != "" {
		cfg.Catalog.Timeout, err = time.ParseDuration(cfg.Catalog.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing catalog timeout %q: %w", cfg.Catalog.TimeoutRaw, err)
		}
	}

	return nil
}
