package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	favmocks "github.com/chainsafe/marketplace-favorites/pkg/favorites/mocks"
	"github.com/chainsafe/marketplace-favorites/pkg/picks/service/mocks"
)

const caller = "0x1111111111111111111111111111111111111111"

type fixture struct {
	store  *mocks.Store
	lists  *mocks.ListChecker
	items  *favmocks.ItemChecker
	scorer *favmocks.PowerScorer
	svc    Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  mocks.NewStore(t),
		lists:  mocks.NewListChecker(t),
		items:  favmocks.NewItemChecker(t),
		scorer: favmocks.NewPowerScorer(t),
	}
	f.svc = NewService(f.store, f.lists, f.items, f.scorer, zap.NewNop())
	return f
}

func TestPicksService_GetPicksStats_OneEntryPerRequestedItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	opts := favorites.StatsOptions{UserAddress: caller}
	picked := true

	f.store.EXPECT().GetPicksStats(ctx, []string{"b", "a", "c"}, opts).
		Return([]*favorites.PickStats{
			{ItemID: "a", Count: 3, PickedByUser: &picked},
		}, nil).
		Once()

	stats, err := f.svc.GetPicksStats(ctx, []string{"b", "a", "b", "c"}, opts)
	if err != nil {
		t.Fatalf("GetPicksStats() failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(stats))
	}
	for i, want := range []struct {
		id     string
		count  int
		picked bool
	}{{"b", 0, false}, {"a", 3, true}, {"c", 0, false}} {
		got := stats[i]
		if got.ItemID != want.id || got.Count != want.count {
			t.Fatalf("entry %d: expected %s/%d, got %s/%d", i, want.id, want.count, got.ItemID, got.Count)
		}
		if got.PickedByUser == nil || *got.PickedByUser != want.picked {
			t.Fatalf("entry %d: expected picked_by_user %v, got %v", i, want.picked, got.PickedByUser)
		}
	}
}

func TestPicksService_GetPicksStats_Anonymous(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.store.EXPECT().GetPicksStats(ctx, []string{"a"}, favorites.StatsOptions{}).Return(nil, nil).Once()

	stats, err := f.svc.GetPicksStats(ctx, []string{"a"}, favorites.StatsOptions{})
	if err != nil {
		t.Fatalf("GetPicksStats() failed: %v", err)
	}
	if len(stats) != 1 || stats[0].Count != 0 || stats[0].PickedByUser != nil {
		t.Fatalf("unexpected stats: %+v", stats[0])
	}

	empty, err := f.svc.GetPicksStats(ctx, nil, favorites.StatsOptions{})
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no stats for no items, got %v, %v", empty, err)
	}
}

func TestPicksService_PickAndUnpickInBulk_NonEditableListAbortsEverything(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bulk := favorites.BulkPick{PickedFor: []string{"L1"}, UnpickedFrom: []string{"L2"}}

	f.items.EXPECT().CheckItem(mock.Anything, "item-9").Return(nil).Once()
	f.lists.EXPECT().CheckNonEditableLists(mock.Anything, []string{"L1", "L2"}, caller).
		Return(favorites.ToServiceError(&favorites.ListsNotFoundError{ListIDs: []string{"L2"}})).
		Once()

	err := f.svc.PickAndUnpickInBulk(ctx, "item-9", bulk, caller)
	var notFound *favorites.ListsNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ListsNotFoundError, got %v", err)
	}
	if !reflect.DeepEqual(notFound.ListIDs, []string{"L2"}) {
		t.Fatalf("expected offending ids [L2], got %v", notFound.ListIDs)
	}
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found category, got %v", err)
	}
	f.store.AssertNotCalled(t, "PickAndUnpick", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.scorer.AssertNotCalled(t, "Score", mock.Anything, mock.Anything)
}

func TestPicksService_PickAndUnpickInBulk_UnknownItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bulk := favorites.BulkPick{PickedFor: []string{"L1"}}

	f.items.EXPECT().CheckItem(mock.Anything, "ghost").Return(&favorites.ItemNotFoundError{ItemID: "ghost"}).Once()
	f.lists.EXPECT().CheckNonEditableLists(mock.Anything, []string{"L1"}, caller).Return(nil).Maybe()

	err := f.svc.PickAndUnpickInBulk(ctx, "ghost", bulk, caller)
	var notFound *favorites.ItemNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ItemNotFoundError, got %v", err)
	}
	f.store.AssertNotCalled(t, "PickAndUnpick", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPicksService_PickAndUnpickInBulk_WritesWithPower(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bulk := favorites.BulkPick{PickedFor: []string{"L1", "L3"}, UnpickedFrom: []string{"L2"}}

	f.items.EXPECT().CheckItem(mock.Anything, "item-9").Return(nil).Once()
	f.lists.EXPECT().CheckNonEditableLists(mock.Anything, []string{"L1", "L3", "L2"}, caller).Return(nil).Once()
	f.scorer.EXPECT().Score(ctx, caller).Return(int64(12), nil).Once()
	f.store.EXPECT().
		PickAndUnpick(ctx, "item-9", caller, bulk, mock.MatchedBy(func(p *int64) bool { return p != nil && *p == 12 })).
		Return(nil).
		Once()

	if err := f.svc.PickAndUnpickInBulk(ctx, "item-9", bulk, caller); err != nil {
		t.Fatalf("PickAndUnpickInBulk() failed: %v", err)
	}
}

func TestPicksService_PickAndUnpickInBulk_UnpickOnlySkipsPower(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bulk := favorites.BulkPick{UnpickedFrom: []string{"L2"}}

	f.items.EXPECT().CheckItem(mock.Anything, "item-9").Return(nil).Once()
	f.lists.EXPECT().CheckNonEditableLists(mock.Anything, []string{"L2"}, caller).Return(nil).Once()
	f.store.EXPECT().PickAndUnpick(ctx, "item-9", caller, bulk, (*int64)(nil)).Return(nil).Once()

	if err := f.svc.PickAndUnpickInBulk(ctx, "item-9", bulk, caller); err != nil {
		t.Fatalf("PickAndUnpickInBulk() failed: %v", err)
	}
	f.scorer.AssertNotCalled(t, "Score", mock.Anything, mock.Anything)
}

func TestPicksService_PickAndUnpickInBulk_PowerFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	bulk := favorites.BulkPick{PickedFor: []string{"L1"}}

	f.items.EXPECT().CheckItem(mock.Anything, "item-9").Return(nil).Once()
	f.lists.EXPECT().CheckNonEditableLists(mock.Anything, []string{"L1"}, caller).Return(nil).Once()
	f.scorer.EXPECT().Score(ctx, caller).
		Return(int64(0), &favorites.ScoreError{Address: caller, Reason: "unavailable"}).Once()
	f.store.EXPECT().PickAndUnpick(ctx, "item-9", caller, bulk, (*int64)(nil)).Return(nil).Once()

	if err := f.svc.PickAndUnpickInBulk(ctx, "item-9", bulk, caller); err != nil {
		t.Fatalf("PickAndUnpickInBulk() failed: %v", err)
	}
}

func TestPicksService_GetPicksByItemID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	power := int64(3)
	opts := favorites.PickersOptions{UserAddress: caller, Limit: 5, Power: &power}

	f.store.EXPECT().GetPickers(ctx, "item-1", opts).
		Return([]*favorites.Picker{{UserAddress: caller}}, 4, nil).Once()

	page, err := f.svc.GetPicksByItemID(ctx, "item-1", opts)
	if err != nil {
		t.Fatalf("GetPicksByItemID() failed: %v", err)
	}
	if page.Total != 4 || page.Limit != 5 || page.Results[0].UserAddress != caller {
		t.Fatalf("unexpected page: %+v", page)
	}
}
