package favorites

import "context"

// ItemChecker confirms an item exists before it can be picked. It returns
// *ItemNotFoundError for unknown items and *QueryFailureError when it cannot tell.
//
//go:generate mockery --name ItemChecker --output mocks --outpkg mocks --filename mock_item_checker.go --with-expecter
type ItemChecker interface {
	CheckItem(ctx context.Context, itemID string) error
}

// PowerScorer computes the voting power of an address. Failures are *ScoreError.
//
//go:generate mockery --name PowerScorer --output mocks --outpkg mocks --filename mock_power_scorer.go --with-expecter
type PowerScorer interface {
	Score(ctx context.Context, address string) (int64, error)
}

// PowerResult is the outcome of a best-effort voting power lookup: either a
// known power or the error that prevented computing it.
type PowerResult struct {
	power int64
	err   error
}

// FetchPower queries scorer and captures the outcome without failing.
func FetchPower(ctx context.Context, scorer PowerScorer, address string) PowerResult {
	power, err := scorer.Score(ctx, address)
	if err != nil {
		return PowerResult{err: err}
	}
	if power < 0 {
		power = 0
	}
	return PowerResult{power: power}
}

// Value returns the known power, or nil if the lookup failed.
func (r PowerResult) Value() *int64 {
	if r.err != nil {
		return nil
	}
	p := r.power
	return &p
}

// Err returns the lookup failure, if any.
func (r PowerResult) Err() error {
	return r.err
}
