package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults: Open-Meteo's public endpoints, which need no API key.
const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// Config holds CLI configuration. Every field has a default so the binary
// runs with no config file present.
type Config struct {
	GeocodeURL  string
	ForecastURL string
	HTTPTimeout time.Duration

	GeocodeLimit int
	ForecastDays int
	DefaultUnit  string // "celsius" or "fahrenheit"

	RateLimitRPS   float64
	RateLimitBurst int
}

type fileConfig struct {
	Endpoints struct {
		GeocodeURL  string `yaml:"geocode_url"`
		ForecastURL string `yaml:"forecast_url"`
	} `yaml:"endpoints"`

	Request struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"request"`

	Lookup struct {
		GeocodeLimit int    `yaml:"geocode_limit"`
		ForecastDays int    `yaml:"forecast_days"`
		DefaultUnit  string `yaml:"default_unit"`
	} `yaml:"lookup"`

	Reliability struct {
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
	} `yaml:"reliability"`
}

// Load reads configuration from WEATHERCLI_CONFIG if set, otherwise from
// config/{ENV_NAME}.yaml (default dev) relative to the working directory.
// A missing default file is not an error; an explicitly named file must
// exist.
func Load() (*Config, error) {
	cfg := defaults()

	path := os.Getenv("WEATHERCLI_CONFIG")
	explicit := path != ""
	if !explicit {
		env := os.Getenv("ENV_NAME")
		if env == "" {
			env = "dev"
		}
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("config: get working directory: %w", err)
		}
		path = filepath.Join(cwd, "config", env+".yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, validate(cfg)
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	merge(cfg, fc)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		GeocodeURL:     defaultGeocodeURL,
		ForecastURL:    defaultForecastURL,
		HTTPTimeout:    10 * time.Second,
		GeocodeLimit:   5,
		ForecastDays:   5,
		DefaultUnit:    "celsius",
		RateLimitRPS:   2,
		RateLimitBurst: 4,
	}
}

func merge(cfg *Config, fc fileConfig) {
	if fc.Endpoints.GeocodeURL != "" {
		cfg.GeocodeURL = fc.Endpoints.GeocodeURL
	}
	if fc.Endpoints.ForecastURL != "" {
		cfg.ForecastURL = fc.Endpoints.ForecastURL
	}
	cfg.HTTPTimeout = parseDuration(fc.Request.Timeout, cfg.HTTPTimeout)
	if fc.Lookup.GeocodeLimit > 0 {
		cfg.GeocodeLimit = fc.Lookup.GeocodeLimit
	}
	if fc.Lookup.ForecastDays > 0 {
		cfg.ForecastDays = fc.Lookup.ForecastDays
	}
	if fc.Lookup.DefaultUnit != "" {
		cfg.DefaultUnit = strings.TrimSpace(strings.ToLower(fc.Lookup.DefaultUnit))
	}
	if fc.Reliability.RateLimitRPS > 0 {
		cfg.RateLimitRPS = fc.Reliability.RateLimitRPS
	}
	if fc.Reliability.RateLimitBurst > 0 {
		cfg.RateLimitBurst = fc.Reliability.RateLimitBurst
	}
}

// parseDuration parses a duration string, falling back to defaultVal on empty
// input, parse error, or a non-positive result.
func parseDuration(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func validate(cfg *Config) error {
	if cfg.GeocodeURL == "" || cfg.ForecastURL == "" {
		return fmt.Errorf("endpoint URLs must not be empty")
	}
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 16 {
		return fmt.Errorf("lookup.forecast_days must be 1-16, got %d", cfg.ForecastDays)
	}
	if cfg.GeocodeLimit < 1 || cfg.GeocodeLimit > 100 {
		return fmt.Errorf("lookup.geocode_limit must be 1-100, got %d", cfg.GeocodeLimit)
	}
	switch cfg.DefaultUnit {
	case "celsius", "fahrenheit":
	default:
		return fmt.Errorf("lookup.default_unit must be celsius or fahrenheit, got %q", cfg.DefaultUnit)
	}
	return nil
}
