package service

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/internal/metrics"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// Store is the narrow data-access interface for the picks service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetPicksStats(ctx context.Context, itemIDs []string, opts favorites.StatsOptions) ([]*favorites.PickStats, error)
	GetPickers(ctx context.Context, itemID string, opts favorites.PickersOptions) ([]*favorites.Picker, int, error)
	PickAndUnpick(ctx context.Context, itemID, caller string, bulk favorites.BulkPick, power *int64) error
}

// ListChecker verifies the caller may edit every list of a bulk operation.
//
//go:generate mockery --name ListChecker --output mocks --outpkg mocks --filename mock_list_checker.go --with-expecter
type ListChecker interface {
	CheckNonEditableLists(ctx context.Context, listIDs []string, caller string) error
}

// Service defines the interface for the picks business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetPicksStats(ctx context.Context, itemIDs []string, opts favorites.StatsOptions) ([]*favorites.PickStats, error)
	GetPicksByItemID(ctx context.Context, itemID string, opts favorites.PickersOptions) (*favorites.Page[*favorites.Picker], error)
	PickAndUnpickInBulk(ctx context.Context, itemID string, bulk favorites.BulkPick, caller string) error
}

type picksService struct {
	store  Store
	lists  ListChecker
	items  favorites.ItemChecker
	scorer favorites.PowerScorer
	logger *zap.Logger
}

// NewService creates a new picks service
func NewService(
	store Store,
	lists ListChecker,
	items favorites.ItemChecker,
	scorer favorites.PowerScorer,
	logger *zap.Logger,
) Service {
	return &picksService{
		store:  store,
		lists:  lists,
		items:  items,
		scorer: scorer,
		logger: logger,
	}
}

// GetPicksStats returns exactly one entry per distinct requested item id, in
// request order. Items nobody picked have a zero count.
func (s *picksService) GetPicksStats(ctx context.Context, itemIDs []string, opts favorites.StatsOptions) ([]*favorites.PickStats, error) {
	ids := dedupe(itemIDs)
	if len(ids) == 0 {
		return []*favorites.PickStats{}, nil
	}

	rows, err := s.store.GetPicksStats(ctx, ids, opts)
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}

	byItem := make(map[string]*favorites.PickStats, len(rows))
	for _, row := range rows {
		byItem[row.ItemID] = row
	}
	stats := make([]*favorites.PickStats, len(ids))
	for i, id := range ids {
		if row, ok := byItem[id]; ok {
			stats[i] = row
			continue
		}
		stats[i] = &favorites.PickStats{ItemID: id}
		if opts.UserAddress != "" {
			picked := false
			stats[i].PickedByUser = &picked
		}
	}
	return stats, nil
}

// GetPicksByItemID returns the addresses that picked an item, the caller first.
func (s *picksService) GetPicksByItemID(ctx context.Context, itemID string, opts favorites.PickersOptions) (*favorites.Page[*favorites.Picker], error) {
	pickers, total, err := s.store.GetPickers(ctx, itemID, opts)
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	return &favorites.Page[*favorites.Picker]{
		Results: pickers,
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	}, nil
}

// PickAndUnpickInBulk adds the item to every list of bulk.PickedFor and
// removes it from every list of bulk.UnpickedFrom. Nothing is written unless
// the item exists and the caller may edit all the lists.
func (s *picksService) PickAndUnpickInBulk(ctx context.Context, itemID string, bulk favorites.BulkPick, caller string) error {
	p := pool.New().WithErrors().WithContext(ctx).WithFirstError()
	p.Go(func(ctx context.Context) error {
		return s.items.CheckItem(ctx, itemID)
	})
	p.Go(func(ctx context.Context) error {
		return s.lists.CheckNonEditableLists(ctx, bulk.ListIDs(), caller)
	})
	if err := p.Wait(); err != nil {
		return favorites.ToServiceError(err)
	}

	var power *int64
	if len(bulk.PickedFor) > 0 {
		result := favorites.FetchPower(ctx, s.scorer, caller)
		if err := result.Err(); err != nil {
			s.logger.Warn("voting power unavailable, keeping stored value",
				zap.String("user_address", caller),
				zap.Error(err),
			)
		}
		power = result.Value()
	}

	if err := s.store.PickAndUnpick(ctx, itemID, caller, bulk, power); err != nil {
		return favorites.ToServiceError(err)
	}
	metrics.PicksMutationsTotal.WithLabelValues(metrics.OperationPickBulk).Inc()
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
