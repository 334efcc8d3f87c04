package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/larder/internal/catalog"
)

// Gateway is the remote data contract the console depends on. *Client
// implements it; tests substitute fakes.
type Gateway interface {
	FetchProducts(ctx context.Context) ([]catalog.Product, error)
	FetchBerries(ctx context.Context, limit, offset int) (BerryPage, error)
	FetchBerryDetail(ctx context.Context, name string) (BerryDetail, error)
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

const (
	DefaultProductURL = "https://fakestoreapi.com/products"
	DefaultBerryURL   = "https://pokeapi.co/api/v2/berry/"
	defaultUserAgent  = "larder/0.1"
	defaultTimeout    = 5 * time.Second
	requestIDHeader   = "X-Request-ID"
)

// Options configure a Client. Zero values fall back to defaults.
type Options struct {
	ProductURL string
	BerryURL   string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Client talks to the product seed API and the berry reference API.
type Client struct {
	productURL *url.URL
	berryURL   *url.URL
	http       *http.Client
	userAgent  string
	log        *zap.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	productURL, err := parseEndpoint(opts.ProductURL, DefaultProductURL)
	if err != nil {
		return nil, err
	}
	berryURL, err := parseEndpoint(opts.BerryURL, DefaultBerryURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		productURL: productURL,
		berryURL:   berryURL,
		http:       &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
		log:        logger.Named("remote"),
	}, nil
}

// FetchProducts retrieves the full product seed collection.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []catalog.Product
	if err := c.get(ctx, c.productURL, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchBerries retrieves one page of the berry catalog.
func (c *Client) FetchBerries(ctx context.Context, limit, offset int) (BerryPage, error) {
	if c == nil {
		return BerryPage{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		values.Set("offset", strconv.Itoa(offset))
	}
	target := *c.berryURL
	target.RawQuery = values.Encode()

	var payload BerryPage
	if err := c.get(ctx, &target, &payload); err != nil {
		return BerryPage{}, err
	}
	return payload, nil
}

// FetchBerryDetail looks up a single berry by name. Unknown names yield an
// error wrapping ErrNotFound.
func (c *Client) FetchBerryDetail(ctx context.Context, name string) (BerryDetail, error) {
	if c == nil {
		return BerryDetail{}, fmt.Errorf("client is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return BerryDetail{}, fmt.Errorf("berry name required")
	}
	// names are one path segment; anything else would leave the berry endpoint
	if name == "." || name == ".." || strings.ContainsAny(name, `/\?#`) {
		return BerryDetail{}, fmt.Errorf("berry %q: %w", name, ErrNotFound)
	}
	target := c.berryURL.JoinPath(name)

	var payload BerryDetail
	if err := c.get(ctx, target, &payload); err != nil {
		if errors.Is(err, ErrNotFound) {
			return BerryDetail{}, fmt.Errorf("berry %q: %w", name, ErrNotFound)
		}
		return BerryDetail{}, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, target *url.URL, dest any) error {
	reqID := uuid.NewString()
	started := time.Now()
	log := c.log.With(zap.String("request_id", reqID), zap.String("url", target.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		return &NetworkError{URL: target.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("response", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode == http.StatusNotFound {
		return &NetworkError{URL: target.String(), StatusCode: resp.StatusCode, Err: ErrNotFound}
	}
	if resp.StatusCode >= 400 {
		return &NetworkError{URL: target.String(), StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &NetworkError{URL: target.String(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseEndpoint(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
