package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"CatalogBrowser/internal/catalog"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

var (
	ErrUnavailable = errors.New("upstream unavailable")
	ErrBadStatus   = errors.New("upstream bad status")
	ErrDecode      = errors.New("upstream bad payload")
)

// Endpoint names double as metric labels.
const (
	EndpointProducts   = "products"
	EndpointCategories = "categories"
)

type Client struct {
	ProductsURL   string
	CategoriesURL string
	HTTP          *http.Client
	Metrics       *Metrics
}

func NewClient(productsURL, categoriesURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		ProductsURL:   strings.TrimSpace(productsURL),
		CategoriesURL: strings.TrimSpace(categoriesURL),
		HTTP:          &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.getJSON(ctx, EndpointProducts, c.ProductsURL, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []catalog.Product{}
	}
	return out, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.getJSON(ctx, EndpointCategories, c.CategoriesURL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, url string, dst any) (err error) {
	start := time.Now()
	defer func() { c.Metrics.observe(endpoint, outcome(err), time.Since(start)) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%w: %s: status=%d", ErrBadStatus, endpoint, resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, endpoint, err)
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrBadStatus):
		return "bad_status"
	case errors.Is(err, ErrDecode):
		return "bad_payload"
	default:
		return "unavailable"
	}
}
