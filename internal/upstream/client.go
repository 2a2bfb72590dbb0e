// internal/upstream/client.go
//
// Thin JSON GET client shared by the word and hint sources.
// Responsibilities:
//   - One resty client per source with a per-request timeout.
//   - Optional extra attempts (retry-go); zero retries means a single attempt.
//   - Status mapping: 404 → ErrNotFound (never retried), other non-2xx → *StatusError.
//
// Callers treat every error as "no data" and fall back; nothing here logs.

package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// ErrNotFound is returned when the upstream answers 404.
var ErrNotFound = errors.New("upstream: not found")

// StatusError carries a non-2xx, non-404 status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: status %d: %s", e.Code, e.Body)
}

// Config controls request behaviour.
type Config struct {
	Timeout    time.Duration // per attempt
	Retries    uint          // extra attempts after the first
	RetryDelay time.Duration
	UserAgent  string
}

// Client performs JSON GET requests.
type Client struct {
	http       *resty.Client
	retries    uint
	retryDelay time.Duration
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	rc := resty.New()
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	rc.SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 200 * time.Millisecond
	}
	return &Client{http: rc, retries: cfg.Retries, retryDelay: delay}
}

// GetJSON fetches url with the given query parameters and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, url string, query map[string]string, out any) error {
	return retry.Do(
		func() error {
			err := c.getOnce(ctx, url, query, out)
			if errors.Is(err, ErrNotFound) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.retries+1),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
	)
}

func (c *Client) getOnce(ctx context.Context, url string, query map[string]string, out any) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(url)
	if err != nil {
		return fmt.Errorf("client.R.Get > %w", err)
	}
	switch code := res.StatusCode(); {
	case code == http.StatusNotFound:
		return ErrNotFound
	case code < 200 || code > 299:
		return &StatusError{Code: code, Body: truncate(string(res.Body()), 200)}
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
