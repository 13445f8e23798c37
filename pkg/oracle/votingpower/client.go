// Package votingpower computes address voting power with the Snapshot score API.
package votingpower

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/chainsafe/marketplace-favorites/internal/metrics"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

const (
	latestSnapshot  = "latest"
	maxResponseSize = 1 << 20
)

type scoreParams struct {
	Space      string            `json:"space"`
	Network    string            `json:"network"`
	Snapshot   string            `json:"snapshot"`
	Strategies []config.Strategy `json:"strategies"`
	Addresses  []string          `json:"addresses"`
}

type scoreRequest struct {
	Params scoreParams `json:"params"`
}

type scoreResponse struct {
	Result *struct {
		// One map per strategy, keyed by address.
		Scores []map[string]decimal.Decimal `json:"scores"`
	} `json:"result"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("score api returned status %d", e.code)
}

// Client is a favorites.PowerScorer for one Snapshot space.
type Client struct {
	url        string
	space      string
	network    string
	strategies []config.Strategy
	http       *http.Client
	limiter    *rate.Limiter
	attempts   uint
	delay      time.Duration
	logger     *zap.Logger
}

var _ favorites.PowerScorer = (*Client)(nil)

// NewClient creates a score API client from the voting power configuration.
func NewClient(cfg *config.VotingPowerConfig, logger *zap.Logger) *Client {
	return &Client{
		url:        cfg.URL,
		space:      cfg.Space,
		network:    cfg.Network,
		strategies: cfg.Strategies,
		http:       &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		attempts:   cfg.RetryAttempts,
		delay:      cfg.RetryDelay,
		logger:     logger,
	}
}

// Score returns the floored sum of the address' scores over all strategies.
func (c *Client) Score(ctx context.Context, address string) (int64, error) {
	start := time.Now()

	var total decimal.Decimal
	err := retry.Do(func() error {
		var err error
		total, err = c.fetch(ctx, address)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
	)
	if err != nil {
		metrics.ObserveOracle(metrics.OracleVotingPower, metrics.OutcomeError, start)
		return 0, &favorites.ScoreError{Address: address, Reason: err.Error()}
	}

	metrics.ObserveOracle(metrics.OracleVotingPower, metrics.OutcomeOK, start)
	return total.Floor().IntPart(), nil
}

func retryable(err error) bool {
	var status *statusError
	if errors.As(err, &status) {
		return status.code >= http.StatusInternalServerError || status.code == http.StatusTooManyRequests
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr)
}

func (c *Client) fetch(ctx context.Context, address string) (decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, err
	}

	body, err := json.Marshal(scoreRequest{Params: scoreParams{
		Space:      c.space,
		Network:    c.network,
		Snapshot:   latestSnapshot,
		Strategies: c.strategies,
		Addresses:  []string{address},
	}})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to encode score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("score request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, &statusError{code: resp.StatusCode}
	}

	var out scoreResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode score response: %w", err)
	}
	if out.Error != nil {
		return decimal.Zero, fmt.Errorf("score api error %d: %s", out.Error.Code, out.Error.Message)
	}
	if out.Result == nil {
		return decimal.Zero, errors.New("score response has no result")
	}

	total := decimal.Zero
	for _, scores := range out.Result.Scores {
		// The API echoes addresses checksummed.
		for addr, score := range scores {
			if strings.EqualFold(addr, address) {
				total = total.Add(score)
			}
		}
	}
	if total.IsNegative() {
		c.logger.Warn("negative voting power clamped",
			zap.String("address", address),
			zap.String("score", total.String()),
		)
		total = decimal.Zero
	}
	return total, nil
}
