package upstream

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"CatalogBrowser/internal/catalog"
)

type Loader struct {
	Client *Client
	Log    *zap.Logger
}

// Load fetches categories and products concurrently and returns the state to
// serve for the rest of the process lifetime. Any failure yields catalog.Failed
// together with the error; a partial dataset is never returned.
func (l *Loader) Load(ctx context.Context) (catalog.State, error) {
	var (
		categories []string
		products   []catalog.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = l.Client.FetchCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = l.Client.FetchProducts(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		l.logger().Error("catalog load failed", zap.Error(err))
		l.Client.Metrics.setLoaded(0)
		return catalog.Failed(err), err
	}

	l.logger().Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("categories", len(categories)),
	)
	l.Client.Metrics.setLoaded(len(products))

	return catalog.State{
		Products:   products,
		Categories: catalog.WithSentinel(categories),
	}, nil
}

func (l *Loader) logger() *zap.Logger {
	if l.Log == nil {
		return zap.NewNop()
	}
	return l.Log
}
