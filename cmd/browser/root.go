package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CatalogBrowser/internal/catalog"
	"CatalogBrowser/internal/config"
	"CatalogBrowser/internal/upstream"
	"CatalogBrowser/pkg/kit"
)

const service = "browser"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "browser",
	Short:         "Filterable product catalog served from a remote store API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "browser.yaml", "config file path")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadCatalog runs the one startup load. The returned state is always
// servable; err reports why it is empty.
func loadCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger, reg prometheus.Registerer) (catalog.State, error) {
	client := upstream.NewClient(cfg.ProductsURL, cfg.CategoriesURL, cfg.FetchTimeout)
	if reg != nil {
		client.Metrics = upstream.NewMetrics(reg)
	}

	l := &upstream.Loader{Client: client, Log: log}
	return l.Load(ctx)
}

func newLogger(cfg *config.Config) *zap.Logger {
	return kit.NewLogger(service, cfg.LogLevel)
}
