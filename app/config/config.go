package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the dashboard service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Remote data service. Absence of the URL or key does not fail
	// startup: it yields a client whose first I/O attempt errors.
	SupabaseURL     string `yaml:"supabase_url"`
	SupabaseAnonKey string `yaml:"supabase_anon_key"`

	// Session token persistence. Empty disables on-disk persistence.
	SessionFile string `yaml:"session_file"`

	// Cache
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) with
// environment variables taking precedence.
func Load() (*Config, error) {
	config := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, err
		}
	}

	config.Port = getEnvOrDefault("PORT", defaultString(config.Port, "9600"))
	config.Host = getEnvOrDefault("HOST", defaultString(config.Host, "0.0.0.0"))
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", defaultString(config.LogLevel, "info"))

	if v := os.Getenv("SUPABASE_URL"); v != "" {
		config.SupabaseURL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		config.SupabaseAnonKey = v
	}
	if v := os.Getenv("SESSION_FILE"); v != "" {
		config.SessionFile = v
	}

	cacheTTLStr := getEnvOrDefault("CACHE_TTL", "")
	if cacheTTLStr != "" {
		ttl, err := time.ParseDuration(cacheTTLStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
		}
		config.CacheTTL = ttl
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 30 * time.Second
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.CacheTTL < time.Second {
		return fmt.Errorf("cache TTL must be at least 1 second, got: %v", c.CacheTTL)
	}

	return nil
}

// Configured reports whether the remote data service settings are present.
func (c *Config) Configured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

func loadFile(config *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultString(current, fallback string) string {
	if current != "" {
		return current
	}
	return fallback
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
