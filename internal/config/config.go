package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when no path is given
const DefaultPath = "novraux.yaml"

// Environment variables for the backend address. The second name is the
// one the web build used and is still honored.
const (
	EnvAPIURL       = "NOVRAUX_API_URL"
	EnvLegacyAPIURL = "VITE_API_URL"
)

// Default values
const (
	DefaultAPIURL           = "http://localhost:8000"
	DefaultTrendLimit       = 100
	DefaultProductLimit     = 50
	DefaultOrderLimit       = 50
	DefaultScrapeResetDelay = time.Second
	DefaultBulkPollInterval = 3 * time.Second
	DefaultToastDuration    = 2800 * time.Millisecond
)

// Config is the startup configuration of the dashboard
type Config struct {
	APIURL string

	TrendLimit   int
	ProductLimit int
	OrderLimit   int

	ScrapeResetDelay time.Duration
	BulkPollInterval time.Duration
	ToastDuration    time.Duration
}

type configFile struct {
	APIURL string `yaml:"api_url"`
	Limits struct {
		Trends   int `yaml:"trends"`
		Products int `yaml:"products"`
		Orders   int `yaml:"orders"`
	} `yaml:"limits"`
	Scrape struct {
		ResetDelay string `yaml:"reset_delay"`
	} `yaml:"scrape"`
	SEO struct {
		BulkPollInterval string `yaml:"bulk_poll_interval"`
	} `yaml:"seo"`
	UI struct {
		ToastDuration string `yaml:"toast_duration"`
	} `yaml:"ui"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		APIURL:           DefaultAPIURL,
		TrendLimit:       DefaultTrendLimit,
		ProductLimit:     DefaultProductLimit,
		OrderLimit:       DefaultOrderLimit,
		ScrapeResetDelay: DefaultScrapeResetDelay,
		BulkPollInterval: DefaultBulkPollInterval,
		ToastDuration:    DefaultToastDuration,
	}
}

// Load builds the configuration from defaults, the YAML file at path (a
// missing file is fine), a .env file in the working directory and the
// backend address environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.applyFile(raw); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Config file %s not found, using defaults", path)
	default:
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	if url := apiURLFromEnv(); url != "" {
		cfg.APIURL = url
	}
	return cfg, nil
}

func (c *Config) applyFile(raw []byte) error {
	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}
	if v := strings.TrimSpace(f.APIURL); v != "" {
		c.APIURL = v
	}
	if f.Limits.Trends > 0 {
		c.TrendLimit = f.Limits.Trends
	}
	if f.Limits.Products > 0 {
		c.ProductLimit = f.Limits.Products
	}
	if f.Limits.Orders > 0 {
		c.OrderLimit = f.Limits.Orders
	}

	durations := []struct {
		name  string
		value string
		dst   *time.Duration
	}{
		{"scrape.reset_delay", f.Scrape.ResetDelay, &c.ScrapeResetDelay},
		{"seo.bulk_poll_interval", f.SEO.BulkPollInterval, &c.BulkPollInterval},
		{"ui.toast_duration", f.UI.ToastDuration, &c.ToastDuration},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("%s: must be positive, got %s", d.name, d.value)
		}
		*d.dst = parsed
	}
	return nil
}

func apiURLFromEnv() string {
	for _, key := range []string{EnvAPIURL, EnvLegacyAPIURL} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// ResolveBaseURL picks the backend address: a non-empty user override from
// the settings dialog wins over the startup configuration.
func ResolveBaseURL(cfg Config, override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return strings.TrimRight(v, "/")
	}
	if cfg.APIURL == "" {
		return DefaultAPIURL
	}
	return strings.TrimRight(cfg.APIURL, "/")
}
