package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"newspulse/backend/internal/config"
	"newspulse/backend/internal/logger"
	"newspulse/backend/internal/model"
)

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 10 * time.Second

// ErrAllProvidersFailed is returned when every configured fetcher failed.
var ErrAllProvidersFailed = errors.New("all news providers failed")

// Fetcher retrieves articles from one upstream news source.
type Fetcher interface {
	// ID returns the provider name.
	ID() string
	// Fetch retrieves the current articles. An empty slice with a nil
	// error is a valid result and counts as success.
	Fetch(ctx context.Context) ([]model.Article, error)
}

// NewRestyClient returns a tuned HTTP client for provider fetchers.
func NewRestyClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", config.UserAgent)
}

// Chain tries fetchers in priority order and returns the first success.
type Chain struct {
	fetchers []Fetcher
}

// NewChain builds a chain over the given fetchers. Nil fetchers are skipped.
func NewChain(fetchers ...Fetcher) *Chain {
	c := &Chain{}
	for _, f := range fetchers {
		if f != nil {
			c.fetchers = append(c.fetchers, f)
		}
	}
	return c
}

// Fetch walks the chain in order. The first fetcher that succeeds wins,
// even when it returns zero articles, and later fetchers are not called.
// When every fetcher fails the error wraps ErrAllProvidersFailed.
func (c *Chain) Fetch(ctx context.Context) ([]model.Article, string, error) {
	var lastErr error
	for _, f := range c.fetchers {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		articles, err := f.Fetch(ctx)
		if err != nil {
			logger.Warn("news provider failed", "module", "provider", "action", "fetch", "resource", f.ID(), "result", "failed", "error", err)
			lastErr = fmt.Errorf("%s: %w", f.ID(), err)
			continue
		}

		logger.Info("news fetched", "module", "provider", "action", "fetch", "resource", f.ID(), "result", "ok", "count", len(articles))
		return articles, f.ID(), nil
	}

	if lastErr != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
	}
	return nil, "", ErrAllProvidersFailed
}

// Sources lists the fetcher IDs in priority order.
func (c *Chain) Sources() []string {
	ids := make([]string, 0, len(c.fetchers))
	for _, f := range c.fetchers {
		ids = append(ids, f.ID())
	}
	return ids
}
