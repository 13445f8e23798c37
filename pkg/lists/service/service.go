package service

import (
	"context"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/internal/metrics"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// Store is the narrow data-access interface for the lists service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetList(ctx context.Context, listID string, rule favorites.AccessRule) (*favorites.List, error)
	GetLists(ctx context.Context, opts favorites.ListsOptions) ([]*favorites.List, int, error)
	CreateList(ctx context.Context, list favorites.NewList) (*favorites.List, error)
	UpdateList(ctx context.Context, listID, owner string, upd favorites.ListUpdate) (*favorites.List, error)
	DeleteList(ctx context.Context, listID, owner string) error
	CreatePick(ctx context.Context, pick favorites.Pick, power *int64) (*favorites.Pick, error)
	DeletePick(ctx context.Context, listID, itemID, caller string) error
	GetPicksByList(ctx context.Context, listID string, opts favorites.PicksOptions) ([]*favorites.Pick, int, error)
	NonEditableLists(ctx context.Context, listIDs []string, caller string) ([]string, error)
}

// Service defines the interface for the lists business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetList(ctx context.Context, listID string, opts favorites.GetListOptions) (*favorites.List, error)
	GetLists(ctx context.Context, opts favorites.ListsOptions) (*favorites.Page[*favorites.List], error)
	AddList(ctx context.Context, list favorites.NewList) (*favorites.List, error)
	UpdateList(ctx context.Context, listID, owner string, upd favorites.ListUpdate) (*favorites.List, error)
	DeleteList(ctx context.Context, listID, owner string) error
	AddPickToList(ctx context.Context, listID, itemID, caller string) (*favorites.Pick, error)
	DeletePickInList(ctx context.Context, listID, itemID, caller string) error
	GetPicksByListID(ctx context.Context, listID string, opts favorites.PicksOptions) (*favorites.Page[*favorites.Pick], error)
	CheckNonEditableLists(ctx context.Context, listIDs []string, caller string) error
}

type listsService struct {
	store  Store
	items  favorites.ItemChecker
	scorer favorites.PowerScorer
	logger *zap.Logger
}

// NewService creates a new lists service
func NewService(store Store, items favorites.ItemChecker, scorer favorites.PowerScorer, logger *zap.Logger) Service {
	return &listsService{
		store:  store,
		items:  items,
		scorer: scorer,
		logger: logger,
	}
}

// GetList resolves a list for the caller in opts.
func (s *listsService) GetList(ctx context.Context, listID string, opts favorites.GetListOptions) (*favorites.List, error) {
	list, err := s.store.GetList(ctx, listID, opts.Rule())
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	return list, nil
}

// GetLists returns the caller's lists and the default list.
func (s *listsService) GetLists(ctx context.Context, opts favorites.ListsOptions) (*favorites.Page[*favorites.List], error) {
	lists, total, err := s.store.GetLists(ctx, opts)
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	return &favorites.Page[*favorites.List]{
		Results: lists,
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	}, nil
}

func (s *listsService) AddList(ctx context.Context, list favorites.NewList) (*favorites.List, error) {
	created, err := s.store.CreateList(ctx, list)
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	return created, nil
}

// UpdateList applies upd to a list owned by owner and returns its new state.
func (s *listsService) UpdateList(ctx context.Context, listID, owner string, upd favorites.ListUpdate) (*favorites.List, error) {
	list, err := s.store.UpdateList(ctx, listID, owner, upd)
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	return list, nil
}

func (s *listsService) DeleteList(ctx context.Context, listID, owner string) error {
	return favorites.ToServiceError(s.store.DeleteList(ctx, listID, owner))
}

// AddPickToList adds an item to a list the caller may edit. The default list
// is editable by everyone. The item must exist; the caller's voting power is
// refreshed on a best-effort basis.
func (s *listsService) AddPickToList(ctx context.Context, listID, itemID, caller string) (*favorites.Pick, error) {
	_, err := s.store.GetList(ctx, listID, favorites.AccessRule{
		Caller:              caller,
		IncludeDefaultOwner: true,
		Required:            favorites.PermissionEdit,
	})
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}

	var (
		wg      conc.WaitGroup
		itemErr error
		power   favorites.PowerResult
	)
	wg.Go(func() { itemErr = s.items.CheckItem(ctx, itemID) })
	wg.Go(func() { power = favorites.FetchPower(ctx, s.scorer, caller) })
	wg.Wait()

	if itemErr != nil {
		return nil, favorites.ToServiceError(itemErr)
	}
	if err := power.Err(); err != nil {
		s.logger.Warn("voting power unavailable, keeping stored value",
			zap.String("user_address", caller),
			zap.Error(err),
		)
	}

	pick, err := s.store.CreatePick(ctx, favorites.Pick{
		ItemID:      itemID,
		UserAddress: caller,
		ListID:      listID,
	}, power.Value())
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	metrics.PicksMutationsTotal.WithLabelValues(metrics.OperationPickAdd).Inc()
	return pick, nil
}

func (s *listsService) DeletePickInList(ctx context.Context, listID, itemID, caller string) error {
	if err := s.store.DeletePick(ctx, listID, itemID, caller); err != nil {
		return favorites.ToServiceError(err)
	}
	metrics.PicksMutationsTotal.WithLabelValues(metrics.OperationPickDelete).Inc()
	return nil
}

// GetPicksByListID returns the picks of a list the caller may view.
func (s *listsService) GetPicksByListID(ctx context.Context, listID string, opts favorites.PicksOptions) (*favorites.Page[*favorites.Pick], error) {
	_, err := s.store.GetList(ctx, listID, favorites.AccessRule{
		Caller:              opts.UserAddress,
		IncludeDefaultOwner: true,
		Required:            favorites.PermissionView,
	})
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}

	picks, total, err := s.store.GetPicksByList(ctx, listID, opts)
	if err != nil {
		return nil, favorites.ToServiceError(err)
	}
	return &favorites.Page[*favorites.Pick]{
		Results: picks,
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	}, nil
}

// CheckNonEditableLists fails with ListsNotFoundError carrying every id the
// caller may not edit.
func (s *listsService) CheckNonEditableLists(ctx context.Context, listIDs []string, caller string) error {
	if len(listIDs) == 0 {
		return nil
	}
	offending, err := s.store.NonEditableLists(ctx, listIDs, caller)
	if err != nil {
		return favorites.ToServiceError(err)
	}
	if len(offending) > 0 {
		return favorites.ToServiceError(&favorites.ListsNotFoundError{ListIDs: offending})
	}
	return nil
}
