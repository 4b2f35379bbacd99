// Package fakestore is a client of the read-only product API
// (https://fakestoreapi.com by default).
package fakestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
)

const DefaultBaseURL = "https://fakestoreapi.com"

var _ port.ProductSource = (*Client)(nil)

var errNotFound = errors.New("not found")

// A statusError is a non-2xx upstream response.
type statusError struct {
	code int
}

func (e statusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.code)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se statusError
	if errors.As(err, &se) {
		return se.code >= http.StatusInternalServerError ||
			se.code == http.StatusTooManyRequests
	}
	return !errors.Is(err, errNotFound)
}

type Opt func(*clientOpts) error

type clientOpts struct {
	baseURL *url.URL
	http    *http.Client
	retry   retry.RetryConfig
}

func BaseURLOpt(rawURL string) Opt {
	return func(o *clientOpts) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url %q: scheme and host required", rawURL)
		}
		o.baseURL = u
		return nil
	}
}

func HTTPClientOpt(c *http.Client) Opt {
	return func(o *clientOpts) error {
		if c == nil {
			return errors.New("http client is nil")
		}
		o.http = c
		return nil
	}
}

// RetryOpt sets the attempts made for a request failing on transport
// errors, 429 or 5xx. Delay is the base of an exponential backoff.
func RetryOpt(attempts int, delay time.Duration) Opt {
	return func(o *clientOpts) error {
		if attempts < 1 {
			return fmt.Errorf("retry attempts %d: must be positive", attempts)
		}
		o.retry.MaxAttempts = attempts
		o.retry.Backoff = retry.ExponentialBackoff(delay)
		return nil
	}
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	retry   retry.RetryConfig
}

func NewClient(opts ...Opt) (Client, error) {
	const op = "fakestore.NewClient"

	options := clientOpts{
		http:  &http.Client{Timeout: 10 * time.Second},
		retry: retry.RetryConfig{MaxAttempts: 1},
	}
	if err := BaseURLOpt(DefaultBaseURL)(&options); err != nil {
		return Client{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return Client{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	options.retry.ShouldRetry = retryable

	return Client{
		baseURL: options.baseURL,
		http:    options.http,
		retry:   options.retry,
	}, nil
}

func (c Client) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.Products"

	var ps []product
	if err := c.get(ctx, &ps, "products"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, toDomainErr(err))
	}
	return toDomain(ps), nil
}

// Product returns domain.ErrProductNotFound for ids the upstream does not
// know, which it reports as 404 or as 200 with an empty body.
func (c Client) Product(ctx context.Context, id int) (domain.Product, error) {
	const op = "Client.Product"

	var p *product
	if err := c.get(ctx, &p, "products", strconv.Itoa(id)); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, toDomainErr(err))
	}
	if p == nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	}
	return p.toDomain(), nil
}

func (c Client) Categories(ctx context.Context) ([]string, error) {
	const op = "Client.Categories"

	var cs []string
	if err := c.get(ctx, &cs, "products", "categories"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, toDomainErr(err))
	}
	if cs == nil {
		cs = []string{}
	}
	return cs, nil
}

func (c Client) ProductsInCategory(
	ctx context.Context, category string,
) ([]domain.Product, error) {
	const op = "Client.ProductsInCategory"

	var ps []product
	err := c.get(ctx, &ps, "products", "category", url.PathEscape(category))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, toDomainErr(err))
	}
	return toDomain(ps), nil
}

// get decodes the JSON body of GET base/elem... into v. Each elem is an
// escaped path segment. An empty body leaves v untouched.
func (c Client) get(ctx context.Context, v any, elem ...string) error {
	const op = "Client.get"
	u := c.baseURL.JoinPath(elem...)
	log := slog.With("op", op, "url", u.String())

	body, err := retry.DoWithResult(ctx, c.retry, func() ([]byte, error) {
		b, err := c.fetch(ctx, u)
		if err != nil && retryable(err) {
			log.Warn("upstream request failed", "err", err)
		}
		return b, err
	})
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

func (c Client) fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, errNotFound
	case res.StatusCode < 200 || res.StatusCode > 299:
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, statusError{res.StatusCode}
	}

	return io.ReadAll(res.Body)
}

func toDomainErr(err error) error {
	switch {
	case errors.Is(err, errNotFound):
		return domain.ErrProductNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
}
