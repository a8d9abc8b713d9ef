package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"CatalogBrowser/internal/browser"
	"CatalogBrowser/internal/render"
	"CatalogBrowser/internal/session"
	"CatalogBrowser/pkg/kit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the catalog once and serve the browser UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := newLogger(cfg)
		defer func() { _ = log.Sync() }()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		reg := prometheus.NewRegistry()

		state, err := loadCatalog(ctx, cfg, log, reg)
		if err != nil {
			log.Warn("serving without catalog", zap.Error(err))
		}

		renderer, err := render.New()
		if err != nil {
			return err
		}
		loc, err := render.ParseLocale(cfg.Locale)
		if err != nil {
			return err
		}

		secret := cfg.SessionSecret
		if secret == "" {
			secret = uuid.NewString() + uuid.NewString()
			log.Warn("session_secret not set; sessions will not survive a restart")
		}

		store := session.NewMemStore(cfg.SessionTTL)
		go store.Sweep(ctx, cfg.SessionSweep, log)

		s := &browser.Server{
			State:    state,
			Renderer: renderer,
			Sessions: &session.Manager{
				Store:  store,
				Tokens: session.NewTokenMaker(secret),
				TTL:    cfg.SessionTTL,
				Secure: !cfg.Dev,
				Log:    log,
			},
			Locale: loc,
			Log:    log,
		}

		h := browser.NewHandler(s, browser.HTTPDeps{
			Log:             log,
			Service:         service,
			Registry:        reg,
			MetricsEnabled:  cfg.MetricsEnabled,
			MetricsToken:    cfg.MetricsToken,
			CORSOrigins:     cfg.CORSOrigins,
			EventsPerMinute: cfg.EventsPerMinute,
			TrustProxy:      cfg.TrustProxy,
		})

		return kit.RunHTTPServer(ctx, ":"+cfg.Port, h, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
