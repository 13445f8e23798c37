// Package items checks item existence against the marketplace GraphQL indexer.
package items

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/chainsafe/marketplace-favorites/internal/metrics"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

const itemQuery = `query Item($id: String!) { items(first: 1, where: { id: $id }) { id } }`

const maxResponseSize = 1 << 20

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// transientError marks failures worth another attempt.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Client is a favorites.ItemChecker backed by the indexer. Known items are
// cached; unknown items are always asked again.
type Client struct {
	url      string
	http     *http.Client
	known    *cache.Cache
	limiter  *rate.Limiter
	attempts uint
	delay    time.Duration
	logger   *zap.Logger
}

var _ favorites.ItemChecker = (*Client)(nil)

// NewClient creates an indexer client from the items configuration.
func NewClient(cfg *config.ItemsConfig, logger *zap.Logger) *Client {
	return &Client{
		url:      cfg.URL,
		http:     &http.Client{Timeout: cfg.Timeout},
		known:    cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		attempts: cfg.RetryAttempts,
		delay:    cfg.RetryDelay,
		logger:   logger,
	}
}

// CheckItem returns nil when the item exists, *favorites.ItemNotFoundError
// when it does not and *favorites.QueryFailureError when the indexer could
// not answer.
func (c *Client) CheckItem(ctx context.Context, itemID string) error {
	start := time.Now()
	if _, ok := c.known.Get(itemID); ok {
		metrics.ObserveOracle(metrics.OracleItems, metrics.OutcomeCached, start)
		return nil
	}

	var found bool
	err := retry.Do(func() error {
		var err error
		found, err = c.query(ctx, itemID)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var transient *transientError
			return errors.As(err, &transient)
		}),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying item query",
				zap.String("item_id", itemID),
				zap.Uint("attempt", n+1),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		metrics.ObserveOracle(metrics.OracleItems, metrics.OutcomeError, start)
		return &favorites.QueryFailureError{Message: err.Error()}
	}
	if !found {
		metrics.ObserveOracle(metrics.OracleItems, metrics.OutcomeNotFound, start)
		return &favorites.ItemNotFoundError{ItemID: itemID}
	}

	c.known.SetDefault(itemID, struct{}{})
	metrics.ObserveOracle(metrics.OracleItems, metrics.OutcomeOK, start)
	return nil
}

func (c *Client) query(ctx context.Context, itemID string) (bool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return false, err
	}

	body, err := json.Marshal(graphQLRequest{
		Query:     itemQuery,
		Variables: map[string]any{"id": itemID},
	})
	if err != nil {
		return false, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, &transientError{err: fmt.Errorf("indexer request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return false, &transientError{err: fmt.Errorf("indexer returned status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("indexer returned status %d", resp.StatusCode)
	}

	var out graphQLResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode indexer response: %w", err)
	}
	if len(out.Errors) > 0 {
		return false, fmt.Errorf("indexer query error: %s", out.Errors[0].Message)
	}
	return len(out.Data.Items) > 0, nil
}
