package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://fakestoreapi.com/products", cfg.ProductsURL)
	assert.Equal(t, "https://fakestoreapi.com/products/categories", cfg.CategoriesURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "en", cfg.Locale)

	cfg.SessionSecret = secret
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Port, cfg.Port)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browser.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
products_url: http://upstream.local/products
fetch_timeout: 3s
locale: ar
session_ttl: 5m
`), 0o644))

	t.Setenv("BROWSER_PORT", "9191")
	t.Setenv("BROWSER_SESSION_SECRET", secret)
	t.Setenv("BROWSER_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BROWSER_EVENTS_PER_MINUTE", "30")
	t.Setenv("BROWSER_DEV", "true")
	t.Setenv("BROWSER_TRUST_PROXY", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, "http://upstream.local/products", cfg.ProductsURL)
	assert.Equal(t, Default().CategoriesURL, cfg.CategoriesURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "ar", cfg.Locale)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, secret, cfg.SessionSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 30, cfg.EventsPerMinute)
	assert.True(t, cfg.Dev)
	assert.True(t, cfg.TrustProxy)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browser.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty port":         func(c *Config) { c.Port = "" },
		"relative url":       func(c *Config) { c.ProductsURL = "/products" },
		"ftp url":            func(c *Config) { c.CategoriesURL = "ftp://host/categories" },
		"zero timeout":       func(c *Config) { c.FetchTimeout = 0 },
		"unsupported locale": func(c *Config) { c.Locale = "fr" },
		"short secret":       func(c *Config) { c.SessionSecret = "short" },
		"zero session ttl":   func(c *Config) { c.SessionTTL = 0 },
		"negative sweep":     func(c *Config) { c.SessionSweep = -time.Second },
		"negative rate":      func(c *Config) { c.EventsPerMinute = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.SessionSecret = secret
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_DevAllowsShortSecret(t *testing.T) {
	cfg := Default()
	cfg.Dev = true
	cfg.SessionSecret = ""
	assert.NoError(t, cfg.Validate())
}
