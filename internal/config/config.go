package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration. Defaults are overridden first
// by an optional YAML file (ASTRO_CONFIG) and then by environment
// variables, so a container can tweak a single knob without shipping a
// full file.
type Config struct {
	Port              string   `yaml:"port"`
	AllowedOrigins    []string `yaml:"allowed_origins"`
	MaxRequestsPerMin int      `yaml:"max_requests_per_min"`
	RequestTimeoutSec int      `yaml:"request_timeout_sec"`
	LogBufferSize     int      `yaml:"log_buffer_size"`
	CacheTTLMin       int      `yaml:"cache_ttl_min"`
	DefaultTimezone   float64  `yaml:"default_timezone"`
}

// Load builds the configuration from defaults, YAML and environment.
func Load() (Config, error) {
	cfg := Config{
		Port:              "5000",
		AllowedOrigins:    []string{"*"},
		MaxRequestsPerMin: 120,
		RequestTimeoutSec: 10,
		LogBufferSize:     1000,
		CacheTTLMin:       15,
		DefaultTimezone:   5.5,
	}

	if path := os.Getenv("ASTRO_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.Port = getenvDefault("PORT", cfg.Port)
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}
	cfg.MaxRequestsPerMin = getenvIntDefault("MAX_REQUESTS_PER_MIN", cfg.MaxRequestsPerMin)
	cfg.RequestTimeoutSec = getenvIntDefault("REQUEST_TIMEOUT_SEC", cfg.RequestTimeoutSec)
	cfg.LogBufferSize = getenvIntDefault("LOG_BUFFER_SIZE", cfg.LogBufferSize)
	cfg.CacheTTLMin = getenvIntDefault("CACHE_TTL_MIN", cfg.CacheTTLMin)
	cfg.DefaultTimezone = getenvFloatDefault("DEFAULT_TIMEZONE", cfg.DefaultTimezone)

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvIntDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloatDefault(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
