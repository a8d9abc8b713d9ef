// Package config loads the service configuration: defaults, then an optional
// YAML file, then BROWSER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"CatalogBrowser/internal/render"
)

const EnvPrefix = "BROWSER_"

const minSecretLen = 32

type Config struct {
	Port          string        `koanf:"port"`
	ProductsURL   string        `koanf:"products_url"`
	CategoriesURL string        `koanf:"categories_url"`
	FetchTimeout  time.Duration `koanf:"fetch_timeout"`
	Locale        string        `koanf:"locale"`
	LogLevel      string        `koanf:"log_level"`

	MetricsEnabled bool   `koanf:"metrics_enabled"`
	MetricsToken   string `koanf:"metrics_token"`

	SessionSecret string        `koanf:"session_secret"`
	SessionTTL    time.Duration `koanf:"session_ttl"`
	SessionSweep  time.Duration `koanf:"session_sweep"`

	CORSOrigins     []string `koanf:"cors_origins"`
	EventsPerMinute int      `koanf:"events_per_minute"`

	// TrustProxy keys the event rate limit on X-Forwarded-For. Enable only
	// behind a proxy that overwrites that header.
	TrustProxy bool `koanf:"trust_proxy"`

	// Dev relaxes the session secret check and drops the Secure cookie flag.
	Dev bool `koanf:"dev"`
}

func Default() *Config {
	return &Config{
		Port:            "8080",
		ProductsURL:     "https://fakestoreapi.com/products",
		CategoriesURL:   "https://fakestoreapi.com/products/categories",
		FetchTimeout:    10 * time.Second,
		Locale:          "en",
		LogLevel:        "info",
		MetricsEnabled:  true,
		SessionTTL:      30 * time.Minute,
		SessionSweep:    time.Minute,
		CORSOrigins:     []string{"*"},
		EventsPerMinute: 600,
	}
}

// Load builds the configuration. A missing file at path is not an error.
// A .env file in the working directory is applied to the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.CORSOrigins = splitList(cfg.CORSOrigins)
	return cfg, nil
}

// splitList lets env vars carry lists as comma separated values.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := validURL("products_url", c.ProductsURL); err != nil {
		return err
	}
	if err := validURL("categories_url", c.CategoriesURL); err != nil {
		return err
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	if _, err := render.ParseLocale(c.Locale); err != nil {
		return err
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if c.SessionSweep < 0 {
		return fmt.Errorf("session_sweep must be non-negative")
	}
	if !c.Dev && len(c.SessionSecret) < minSecretLen {
		return fmt.Errorf("session_secret must be at least %d chars", minSecretLen)
	}
	if c.EventsPerMinute < 0 {
		return fmt.Errorf("events_per_minute must be non-negative")
	}
	return nil
}

func validURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}
