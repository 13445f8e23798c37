package favoritesstore_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	"github.com/chainsafe/marketplace-favorites/pkg/favoritesstore"
	"github.com/chainsafe/marketplace-favorites/pkg/migrations/favoritesdb"
	"github.com/chainsafe/marketplace-favorites/pkg/pgutil"
)

const (
	alice = "0x1111111111111111111111111111111111111111"
	bob   = "0x2222222222222222222222222222222222222222"
	carol = "0x3333333333333333333333333333333333333333"
)

type store interface {
	GetList(ctx context.Context, listID string, rule favorites.AccessRule) (*favorites.List, error)
	GetLists(ctx context.Context, opts favorites.ListsOptions) ([]*favorites.List, int, error)
	CreateList(ctx context.Context, newList favorites.NewList) (*favorites.List, error)
	UpdateList(ctx context.Context, listID, owner string, upd favorites.ListUpdate) (*favorites.List, error)
	DeleteList(ctx context.Context, listID, owner string) error
	NonEditableLists(ctx context.Context, listIDs []string, caller string) ([]string, error)
	CreatePick(ctx context.Context, pick favorites.Pick, power *int64) (*favorites.Pick, error)
	DeletePick(ctx context.Context, listID, itemID, caller string) error
	GetPicksByList(ctx context.Context, listID string, opts favorites.PicksOptions) ([]*favorites.Pick, int, error)
	GetPicksStats(ctx context.Context, itemIDs []string, opts favorites.StatsOptions) ([]*favorites.PickStats, error)
	GetPickers(ctx context.Context, itemID string, opts favorites.PickersOptions) ([]*favorites.Picker, int, error)
	PickAndUnpick(ctx context.Context, itemID, caller string, bulk favorites.BulkPick, power *int64) error
	CreateAccess(ctx context.Context, access favorites.Access) error
	DeleteAccess(ctx context.Context, access favorites.Access, owner string) error
	GetVotingPower(ctx context.Context, address string) (int64, bool, error)
}

func setupStore(t *testing.T) (context.Context, store, *bun.DB) {
	t.Helper()

	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, favoritesdb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("failed to init migrations: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return ctx, favoritesstore.NewStore(db), db
}

func ptr[T any](v T) *T { return &v }

func mustCreateList(t *testing.T, ctx context.Context, s store, owner, name string, private bool) *favorites.List {
	t.Helper()
	list, err := s.CreateList(ctx, favorites.NewList{Name: name, UserAddress: owner, Private: private})
	if err != nil {
		t.Fatalf("CreateList(%s, %s) failed: %v", owner, name, err)
	}
	return list
}

func mustPick(t *testing.T, ctx context.Context, s store, listID, itemID, user string, at time.Time, power *int64) {
	t.Helper()
	pick := favorites.Pick{ListID: listID, ItemID: itemID, UserAddress: user, CreatedAt: at}
	if _, err := s.CreatePick(ctx, pick, power); err != nil {
		t.Fatalf("CreatePick(%s, %s, %s) failed: %v", listID, itemID, user, err)
	}
}

func countRows(t *testing.T, ctx context.Context, db *bun.DB, table, listID string) int {
	t.Helper()
	n, err := db.NewSelect().TableExpr(table).Where("list_id = ?", listID).Count(ctx)
	if err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

func TestCreateList_Uniqueness(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	if list.ID == "" || list.Name != "Books" || list.UserAddress != alice {
		t.Fatalf("unexpected list: %+v", list)
	}

	_, err := s.CreateList(ctx, favorites.NewList{Name: "Books", UserAddress: alice})
	var dup *favorites.DuplicatedListError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicatedListError, got %v", err)
	}

	mustCreateList(t, ctx, s, bob, "Books", false)
	mustCreateList(t, ctx, s, alice, "Movies", false)
}

func TestCreateList_Privacy(t *testing.T) {
	ctx, s, db := setupStore(t)

	public := mustCreateList(t, ctx, s, alice, "Public", false)
	if public.IsPrivate {
		t.Fatal("expected public list")
	}
	if got := countRows(t, ctx, db, "acl", public.ID); got != 1 {
		t.Fatalf("expected one grant on public list, got %d", got)
	}

	private := mustCreateList(t, ctx, s, alice, "Private", true)
	if !private.IsPrivate {
		t.Fatal("expected private list")
	}
	if got := countRows(t, ctx, db, "acl", private.ID); got != 0 {
		t.Fatalf("expected no grant on private list, got %d", got)
	}
}

func TestGetList_AccessScenario(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Favorites2", true)
	viewRule := favorites.AccessRule{Caller: bob, IncludeDefaultOwner: true, Required: favorites.PermissionView}

	_, err := s.GetList(ctx, list.ID, viewRule)
	var notFound *favorites.ListNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError before grant, got %v", err)
	}

	if err := s.CreateAccess(ctx, favorites.Access{ListID: list.ID, Permission: favorites.PermissionView, Grantee: bob}); err != nil {
		t.Fatalf("CreateAccess() failed: %v", err)
	}

	got, err := s.GetList(ctx, list.ID, viewRule)
	if err != nil {
		t.Fatalf("GetList() after grant failed: %v", err)
	}
	if got.Permission != favorites.PermissionView {
		t.Fatalf("expected view permission, got %q", got.Permission)
	}
	if got.IsPrivate {
		t.Fatal("expected list with a grant to be reported as not private")
	}

	editRule := favorites.AccessRule{Caller: bob, Required: favorites.PermissionEdit}
	if _, err := s.GetList(ctx, list.ID, editRule); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError for edit with view grant, got %v", err)
	}
}

func TestGetList_StrongestPermissionWins(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Shared", false)
	if err := s.CreateAccess(ctx, favorites.Access{ListID: list.ID, Permission: favorites.PermissionEdit, Grantee: bob}); err != nil {
		t.Fatalf("CreateAccess() failed: %v", err)
	}

	got, err := s.GetList(ctx, list.ID, favorites.AccessRule{Caller: bob, Required: favorites.PermissionView})
	if err != nil {
		t.Fatalf("GetList() failed: %v", err)
	}
	if got.Permission != favorites.PermissionEdit {
		t.Fatalf("expected edit permission, got %q", got.Permission)
	}

	viaPublic, err := s.GetList(ctx, list.ID, favorites.AccessRule{Caller: carol, Required: favorites.PermissionView})
	if err != nil {
		t.Fatalf("GetList() via public grant failed: %v", err)
	}
	if viaPublic.Permission != favorites.PermissionView {
		t.Fatalf("expected view permission via public grant, got %q", viaPublic.Permission)
	}
}

func TestGetList_InvalidID(t *testing.T) {
	ctx, s, _ := setupStore(t)

	_, err := s.GetList(ctx, "not-a-uuid", favorites.AccessRule{Caller: alice})
	var notFound *favorites.ListNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError, got %v", err)
	}
}

func TestCreatePick_AlreadyExists(t *testing.T) {
	ctx, s, db := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	mustPick(t, ctx, s, list.ID, "item-1", alice, time.Time{}, nil)

	_, err := s.CreatePick(ctx, favorites.Pick{ListID: list.ID, ItemID: "item-1", UserAddress: alice}, nil)
	var exists *favorites.PickAlreadyExistsError
	if !errors.As(err, &exists) {
		t.Fatalf("expected PickAlreadyExistsError, got %v", err)
	}
	if got := countRows(t, ctx, db, "picks", list.ID); got != 1 {
		t.Fatalf("expected exactly one pick, got %d", got)
	}
}

func TestCreatePick_DefaultList(t *testing.T) {
	ctx, s, _ := setupStore(t)

	at := time.Now().UTC().Truncate(time.Millisecond)
	mustPick(t, ctx, s, favorites.DefaultListID, "item-1", alice, at, nil)
	mustPick(t, ctx, s, favorites.DefaultListID, "item-2", bob, at.Add(time.Minute), nil)

	list, err := s.GetList(ctx, favorites.DefaultListID, favorites.AccessRule{
		Caller:              alice,
		IncludeDefaultOwner: true,
		Required:            favorites.PermissionView,
	})
	if err != nil {
		t.Fatalf("GetList(default) failed: %v", err)
	}
	if !list.IsDefault || list.Name != favorites.DefaultListName {
		t.Fatalf("expected default list, got %+v", list)
	}
	if list.ItemsCount != 1 || len(list.Preview) != 1 || list.Preview[0] != "item-1" {
		t.Fatalf("expected only alice's pick, got count=%d preview=%v", list.ItemsCount, list.Preview)
	}
	if list.UpdatedAt == nil || !list.UpdatedAt.Equal(at) {
		t.Fatalf("expected updated_at %v derived from alice's pick, got %v", at, list.UpdatedAt)
	}
}

func TestCreatePick_VotingPowerBaseline(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)

	mustPick(t, ctx, s, list.ID, "item-1", alice, time.Time{}, nil)
	if power, ok, err := s.GetVotingPower(ctx, alice); err != nil || !ok || power != 0 {
		t.Fatalf("expected zero baseline, got power=%d ok=%v err=%v", power, ok, err)
	}

	mustPick(t, ctx, s, list.ID, "item-2", alice, time.Time{}, ptr(int64(7)))
	if power, _, _ := s.GetVotingPower(ctx, alice); power != 7 {
		t.Fatalf("expected power 7, got %d", power)
	}

	mustPick(t, ctx, s, list.ID, "item-3", alice, time.Time{}, nil)
	if power, _, _ := s.GetVotingPower(ctx, alice); power != 7 {
		t.Fatalf("expected unknown power to keep 7, got %d", power)
	}

	if _, ok, err := s.GetVotingPower(ctx, carol); err != nil || ok {
		t.Fatalf("expected no power for carol, got ok=%v err=%v", ok, err)
	}
}

func TestDeletePick(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	mustPick(t, ctx, s, list.ID, "item-1", alice, time.Time{}, nil)

	if err := s.DeletePick(ctx, list.ID, "item-1", bob); err == nil {
		t.Fatal("expected PickNotFoundError for another caller")
	}
	if err := s.DeletePick(ctx, list.ID, "item-1", alice); err != nil {
		t.Fatalf("DeletePick() failed: %v", err)
	}
	err := s.DeletePick(ctx, list.ID, "item-1", alice)
	var notFound *favorites.PickNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PickNotFoundError, got %v", err)
	}
}

func TestUpdateList_RoundTrip(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	before, err := s.GetList(ctx, list.ID, favorites.AccessRule{Caller: alice})
	if err != nil {
		t.Fatalf("GetList() failed: %v", err)
	}

	updated, err := s.UpdateList(ctx, list.ID, alice, favorites.ListUpdate{Name: ptr("X"), Description: ptr("novels")})
	if err != nil {
		t.Fatalf("UpdateList() failed: %v", err)
	}
	if updated.Name != "X" || updated.Description == nil || *updated.Description != "novels" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	after, err := s.GetList(ctx, list.ID, favorites.AccessRule{Caller: alice})
	if err != nil {
		t.Fatalf("GetList() failed: %v", err)
	}
	if after.Name != "X" {
		t.Fatalf("expected name X, got %q", after.Name)
	}
	if after.UpdatedAt == nil || (before.UpdatedAt != nil && !after.UpdatedAt.After(*before.UpdatedAt)) {
		t.Fatalf("expected updated_at to move forward: before=%v after=%v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestUpdateList_PrivacyToggleIsIdempotent(t *testing.T) {
	ctx, s, db := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)

	for _, private := range []bool{true, true, false, false, true, false} {
		got, err := s.UpdateList(ctx, list.ID, alice, favorites.ListUpdate{Private: ptr(private)})
		if err != nil {
			t.Fatalf("UpdateList(private=%v) failed: %v", private, err)
		}
		if got.IsPrivate != private {
			t.Fatalf("expected private=%v, got %v", private, got.IsPrivate)
		}
		want := 1
		if private {
			want = 0
		}
		if n := countRows(t, ctx, db, "acl", list.ID); n != want {
			t.Fatalf("private=%v: expected %d grants, got %d", private, want, n)
		}
	}
}

func TestUpdateList_Failures(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	mustCreateList(t, ctx, s, alice, "Movies", false)

	var notFound *favorites.ListNotFoundError
	if _, err := s.UpdateList(ctx, list.ID, bob, favorites.ListUpdate{Name: ptr("Mine")}); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError for non-owner rename, got %v", err)
	}
	if _, err := s.UpdateList(ctx, list.ID, bob, favorites.ListUpdate{Private: ptr(true)}); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError for non-owner privacy change, got %v", err)
	}
	if _, err := s.UpdateList(ctx, uuid.NewString(), alice, favorites.ListUpdate{}); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError for unknown list, got %v", err)
	}

	var dup *favorites.DuplicatedListError
	if _, err := s.UpdateList(ctx, list.ID, alice, favorites.ListUpdate{Name: ptr("Movies")}); !errors.As(err, &dup) {
		t.Fatalf("expected DuplicatedListError, got %v", err)
	}

	got, err := s.UpdateList(ctx, list.ID, alice, favorites.ListUpdate{})
	if err != nil {
		t.Fatalf("empty UpdateList() failed: %v", err)
	}
	if got.Name != "Books" {
		t.Fatalf("expected unchanged list, got %+v", got)
	}
}

func TestDefaultList_IsReadOnlyForItsOwner(t *testing.T) {
	ctx, s, _ := setupStore(t)
	owner := favorites.DefaultListUserAddress

	var notFound *favorites.ListNotFoundError
	if _, err := s.UpdateList(ctx, favorites.DefaultListID, owner, favorites.ListUpdate{Name: ptr("Mine")}); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError renaming the default list, got %v", err)
	}
	if _, err := s.UpdateList(ctx, favorites.DefaultListID, owner, favorites.ListUpdate{Private: ptr(false)}); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError publishing the default list, got %v", err)
	}
	if err := s.DeleteList(ctx, favorites.DefaultListID, owner); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError deleting the default list, got %v", err)
	}

	list, err := s.GetList(ctx, favorites.DefaultListID, favorites.AccessRule{Caller: alice, IncludeDefaultOwner: true})
	if err != nil {
		t.Fatalf("GetList() failed: %v", err)
	}
	if list.Name != favorites.DefaultListName {
		t.Fatalf("expected default list unchanged, got %+v", list)
	}
}

func TestDeleteList_Cascades(t *testing.T) {
	ctx, s, db := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	mustPick(t, ctx, s, list.ID, "item-1", alice, time.Time{}, nil)
	if err := s.CreateAccess(ctx, favorites.Access{ListID: list.ID, Permission: favorites.PermissionEdit, Grantee: bob}); err != nil {
		t.Fatalf("CreateAccess() failed: %v", err)
	}

	var notFound *favorites.ListNotFoundError
	if err := s.DeleteList(ctx, list.ID, bob); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError for non-owner, got %v", err)
	}
	if err := s.DeleteList(ctx, list.ID, alice); err != nil {
		t.Fatalf("DeleteList() failed: %v", err)
	}
	if n := countRows(t, ctx, db, "picks", list.ID); n != 0 {
		t.Fatalf("expected picks to cascade, %d left", n)
	}
	if n := countRows(t, ctx, db, "acl", list.ID); n != 0 {
		t.Fatalf("expected grants to cascade, %d left", n)
	}
	if err := s.DeleteList(ctx, list.ID, alice); !errors.As(err, &notFound) {
		t.Fatalf("expected ListNotFoundError on second delete, got %v", err)
	}
}

func TestNonEditableLists(t *testing.T) {
	ctx, s, _ := setupStore(t)

	own := mustCreateList(t, ctx, s, alice, "Mine", false)
	foreign := mustCreateList(t, ctx, s, bob, "Theirs", false)
	shared := mustCreateList(t, ctx, s, bob, "Shared", true)
	public := mustCreateList(t, ctx, s, carol, "Open", true)
	if err := s.CreateAccess(ctx, favorites.Access{ListID: shared.ID, Permission: favorites.PermissionEdit, Grantee: alice}); err != nil {
		t.Fatalf("CreateAccess() failed: %v", err)
	}
	if err := s.CreateAccess(ctx, favorites.Access{ListID: public.ID, Permission: favorites.PermissionEdit, Grantee: favorites.Everyone}); err != nil {
		t.Fatalf("CreateAccess() failed: %v", err)
	}
	missing := uuid.NewString()

	got, err := s.NonEditableLists(ctx,
		[]string{own.ID, foreign.ID, shared.ID, public.ID, favorites.DefaultListID, "bogus", missing}, alice)
	if err != nil {
		t.Fatalf("NonEditableLists() failed: %v", err)
	}
	want := []string{foreign.ID, "bogus", missing}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPickAndUnpick(t *testing.T) {
	ctx, s, db := setupStore(t)

	l1 := mustCreateList(t, ctx, s, alice, "One", false)
	l2 := mustCreateList(t, ctx, s, alice, "Two", false)
	mustPick(t, ctx, s, l2.ID, "item-9", alice, time.Time{}, nil)
	mustPick(t, ctx, s, l1.ID, "item-9", alice, time.Time{}, nil)

	bulk := favorites.BulkPick{PickedFor: []string{l1.ID, favorites.DefaultListID}, UnpickedFrom: []string{l2.ID}}
	if err := s.PickAndUnpick(ctx, "item-9", alice, bulk, ptr(int64(3))); err != nil {
		t.Fatalf("PickAndUnpick() failed: %v", err)
	}
	if n := countRows(t, ctx, db, "picks", l1.ID); n != 1 {
		t.Fatalf("expected existing pick in l1 to be kept once, got %d", n)
	}
	if n := countRows(t, ctx, db, "picks", favorites.DefaultListID); n != 1 {
		t.Fatalf("expected pick in default list, got %d", n)
	}
	if n := countRows(t, ctx, db, "picks", l2.ID); n != 0 {
		t.Fatalf("expected pick removed from l2, got %d", n)
	}
	if power, _, _ := s.GetVotingPower(ctx, alice); power != 3 {
		t.Fatalf("expected power 3, got %d", power)
	}

	err := s.PickAndUnpick(ctx, "item-9", alice, favorites.BulkPick{PickedFor: []string{uuid.NewString()}}, nil)
	var notFound *favorites.ListsNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ListsNotFoundError for unknown list, got %v", err)
	}
}

func TestGetPicksStats(t *testing.T) {
	ctx, s, _ := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", false)
	mustPick(t, ctx, s, list.ID, "item-1", alice, time.Time{}, ptr(int64(0)))
	mustPick(t, ctx, s, favorites.DefaultListID, "item-1", bob, time.Time{}, ptr(int64(5)))
	mustPick(t, ctx, s, favorites.DefaultListID, "item-2", carol, time.Time{}, ptr(int64(2)))
	mustPick(t, ctx, s, list.ID, "item-2", alice, time.Time{}, nil)

	byItem := func(stats []*favorites.PickStats) map[string]*favorites.PickStats {
		m := make(map[string]*favorites.PickStats, len(stats))
		for _, st := range stats {
			m[st.ItemID] = st
		}
		return m
	}

	anon, err := s.GetPicksStats(ctx, []string{"item-1", "item-2", "item-0", "item-1"}, favorites.StatsOptions{})
	if err != nil {
		t.Fatalf("GetPicksStats() failed: %v", err)
	}
	if len(anon) != 3 {
		t.Fatalf("expected one row per distinct id, got %d", len(anon))
	}
	m := byItem(anon)
	if m["item-1"].Count != 1 || m["item-2"].Count != 1 || m["item-0"].Count != 0 {
		t.Fatalf("unexpected anonymous counts: 1=%d 2=%d 0=%d", m["item-1"].Count, m["item-2"].Count, m["item-0"].Count)
	}
	if m["item-1"].PickedByUser != nil {
		t.Fatal("expected no picked_by_user for anonymous caller")
	}

	own, err := s.GetPicksStats(ctx, []string{"item-1", "item-0"}, favorites.StatsOptions{UserAddress: alice})
	if err != nil {
		t.Fatalf("GetPicksStats() failed: %v", err)
	}
	m = byItem(own)
	if m["item-1"].Count != 2 {
		t.Fatalf("expected caller's own pick to count, got %d", m["item-1"].Count)
	}
	if m["item-1"].PickedByUser == nil || !*m["item-1"].PickedByUser {
		t.Fatal("expected item-1 picked by alice")
	}
	if m["item-0"].PickedByUser == nil || *m["item-0"].PickedByUser {
		t.Fatal("expected item-0 not picked by alice")
	}

	strict, err := s.GetPicksStats(ctx, []string{"item-2"}, favorites.StatsOptions{Power: ptr(int64(3))})
	if err != nil {
		t.Fatalf("GetPicksStats() failed: %v", err)
	}
	if strict[0].Count != 0 {
		t.Fatalf("expected carol below threshold 3, got %d", strict[0].Count)
	}
}

func TestGetPickers(t *testing.T) {
	ctx, s, _ := setupStore(t)

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	list := mustCreateList(t, ctx, s, alice, "Books", false)
	mustPick(t, ctx, s, list.ID, "item-1", alice, base, ptr(int64(0)))
	mustPick(t, ctx, s, favorites.DefaultListID, "item-1", bob, base.Add(time.Minute), ptr(int64(4)))
	mustPick(t, ctx, s, favorites.DefaultListID, "item-1", carol, base.Add(2*time.Minute), ptr(int64(9)))

	pickers, total, err := s.GetPickers(ctx, "item-1", favorites.PickersOptions{UserAddress: alice, Limit: 10})
	if err != nil {
		t.Fatalf("GetPickers() failed: %v", err)
	}
	if total != 3 || len(pickers) != 3 {
		t.Fatalf("expected 3 pickers, got total=%d len=%d", total, len(pickers))
	}
	order := []string{pickers[0].UserAddress, pickers[1].UserAddress, pickers[2].UserAddress}
	if order[0] != alice || order[1] != carol || order[2] != bob {
		t.Fatalf("expected caller first then most recent, got %v", order)
	}

	anon, total, err := s.GetPickers(ctx, "item-1", favorites.PickersOptions{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("GetPickers() failed: %v", err)
	}
	if total != 2 || len(anon) != 1 || anon[0].UserAddress != bob {
		t.Fatalf("expected second page [bob] of 2, got total=%d %+v", total, anon)
	}

	past, total, err := s.GetPickers(ctx, "item-1", favorites.PickersOptions{Limit: 1, Offset: 5})
	if err != nil {
		t.Fatalf("GetPickers() failed: %v", err)
	}
	if total != 2 || len(past) != 0 {
		t.Fatalf("expected empty page past the end to keep total 2, got total=%d %+v", total, past)
	}
}

func TestGetLists_OffsetPastEnd(t *testing.T) {
	ctx, s, _ := setupStore(t)

	mustCreateList(t, ctx, s, alice, "Alpha", false)
	mustCreateList(t, ctx, s, alice, "Beta", true)

	lists, total, err := s.GetLists(ctx, favorites.ListsOptions{UserAddress: alice, Limit: 10, Offset: 10})
	if err != nil {
		t.Fatalf("GetLists() failed: %v", err)
	}
	if total != 3 || len(lists) != 0 {
		t.Fatalf("expected no lists and total 3, got total=%d len=%d", total, len(lists))
	}

	list := mustCreateList(t, ctx, s, alice, "Gamma", false)
	mustPick(t, ctx, s, list.ID, "item-1", alice, time.Time{}, nil)
	picks, total, err := s.GetPicksByList(ctx, list.ID, favorites.PicksOptions{UserAddress: alice, Limit: 10, Offset: 3})
	if err != nil {
		t.Fatalf("GetPicksByList() failed: %v", err)
	}
	if total != 1 || len(picks) != 0 {
		t.Fatalf("expected no picks and total 1, got total=%d len=%d", total, len(picks))
	}
}

func TestGetPicksByList_Visibility(t *testing.T) {
	ctx, s, _ := setupStore(t)

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	list := mustCreateList(t, ctx, s, alice, "Shared", true)
	if err := s.CreateAccess(ctx, favorites.Access{ListID: list.ID, Permission: favorites.PermissionEdit, Grantee: bob}); err != nil {
		t.Fatalf("CreateAccess() failed: %v", err)
	}
	mustPick(t, ctx, s, list.ID, "item-1", alice, base, nil)
	mustPick(t, ctx, s, list.ID, "item-2", bob, base.Add(time.Minute), nil)

	// The owner holds no grant on a private list: only their own picks are visible.
	owner, total, err := s.GetPicksByList(ctx, list.ID, favorites.PicksOptions{UserAddress: alice, Limit: 10})
	if err != nil {
		t.Fatalf("GetPicksByList() failed: %v", err)
	}
	if total != 1 || len(owner) != 1 || owner[0].ItemID != "item-1" {
		t.Fatalf("expected owner to see only their pick, got total=%d %+v", total, owner)
	}

	grantee, total, err := s.GetPicksByList(ctx, list.ID, favorites.PicksOptions{UserAddress: bob, Limit: 10})
	if err != nil {
		t.Fatalf("GetPicksByList() failed: %v", err)
	}
	if total != 2 || grantee[0].ItemID != "item-2" || grantee[1].ItemID != "item-1" {
		t.Fatalf("expected grantee to see both picks newest first, got total=%d %+v", total, grantee)
	}

	// The page total agrees with the resolved list's item count for every viewer.
	for _, caller := range []string{alice, bob} {
		resolved, err := s.GetList(ctx, list.ID, favorites.AccessRule{
			Caller:              caller,
			IncludeDefaultOwner: true,
			Required:            favorites.PermissionView,
		})
		if err != nil {
			t.Fatalf("GetList(%s) failed: %v", caller, err)
		}
		_, total, err := s.GetPicksByList(ctx, list.ID, favorites.PicksOptions{UserAddress: caller, Limit: 10})
		if err != nil {
			t.Fatalf("GetPicksByList(%s) failed: %v", caller, err)
		}
		if total != resolved.ItemsCount {
			t.Fatalf("caller %s: expected page total %d to equal items_count %d", caller, total, resolved.ItemsCount)
		}
	}

	_, total, err = s.GetPicksByList(ctx, list.ID, favorites.PicksOptions{UserAddress: carol, Limit: 10})
	if err != nil {
		t.Fatalf("GetPicksByList() failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected stranger to see no picks, got %d", total)
	}
}

func TestGetLists(t *testing.T) {
	ctx, s, _ := setupStore(t)

	mustCreateList(t, ctx, s, alice, "beta", false)
	alpha := mustCreateList(t, ctx, s, alice, "Alpha", true)
	mustCreateList(t, ctx, s, alice, "gamma_100%", false)
	mustCreateList(t, ctx, s, bob, "Bobs", false)
	mustPick(t, ctx, s, alpha.ID, "item-1", alice, time.Time{}, nil)

	lists, total, err := s.GetLists(ctx, favorites.ListsOptions{
		UserAddress:   alice,
		Limit:         10,
		SortBy:        favorites.SortByName,
		SortDirection: favorites.SortAsc,
		ItemID:        ptr("item-1"),
	})
	if err != nil {
		t.Fatalf("GetLists() failed: %v", err)
	}
	if total != 4 || len(lists) != 4 {
		t.Fatalf("expected default list plus 3 own lists, got total=%d len=%d", total, len(lists))
	}
	if !lists[0].IsDefault {
		t.Fatalf("expected default list first, got %+v", lists[0])
	}
	names := make([]string, 0, 3)
	for _, l := range lists[1:] {
		names = append(names, l.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected names ascending, got %v", names)
	}
	for _, l := range lists {
		inList := l.IsItemInList != nil && *l.IsItemInList
		if inList != (l.ID == alpha.ID) {
			t.Fatalf("unexpected is_item_in_list=%v for %s", inList, l.Name)
		}
		if l.ID == alpha.ID && (l.ItemsCount != 1 || !l.IsPrivate) {
			t.Fatalf("unexpected alpha annotations: %+v", l)
		}
	}

	filtered, total, err := s.GetLists(ctx, favorites.ListsOptions{UserAddress: alice, Limit: 10, Query: ptr("0%")})
	if err != nil {
		t.Fatalf("GetLists() failed: %v", err)
	}
	if total != 1 || filtered[0].Name != "gamma_100%" {
		t.Fatalf("expected literal %% match only, got total=%d %+v", total, filtered)
	}

	page, total, err := s.GetLists(ctx, favorites.ListsOptions{UserAddress: alice, Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("GetLists() failed: %v", err)
	}
	if total != 4 || len(page) != 1 || page[0].IsDefault {
		t.Fatalf("expected second page of 4 without default list, got total=%d %+v", total, page)
	}
}

func TestAccess_CreateIsIdempotentAndDeleteRequiresOwner(t *testing.T) {
	ctx, s, db := setupStore(t)

	list := mustCreateList(t, ctx, s, alice, "Books", true)
	grant := favorites.Access{ListID: list.ID, Permission: favorites.PermissionView, Grantee: bob}

	for i := 0; i < 2; i++ {
		if err := s.CreateAccess(ctx, grant); err != nil {
			t.Fatalf("CreateAccess() call %d failed: %v", i+1, err)
		}
	}
	if n := countRows(t, ctx, db, "acl", list.ID); n != 1 {
		t.Fatalf("expected one grant, got %d", n)
	}

	var notFound *favorites.AccessNotFoundError
	if err := s.DeleteAccess(ctx, grant, bob); !errors.As(err, &notFound) {
		t.Fatalf("expected AccessNotFoundError for non-owner, got %v", err)
	}
	if err := s.DeleteAccess(ctx, grant, alice); err != nil {
		t.Fatalf("DeleteAccess() failed: %v", err)
	}
	if err := s.DeleteAccess(ctx, grant, alice); !errors.As(err, &notFound) {
		t.Fatalf("expected AccessNotFoundError on second delete, got %v", err)
	}
}
