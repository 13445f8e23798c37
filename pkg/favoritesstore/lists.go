package favoritesstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	"github.com/chainsafe/marketplace-favorites/pkg/pgutil"
)

// GetList resolves a list for the caller described by rule. It returns
// *favorites.ListNotFoundError when the list does not exist or rule does not
// allow it.
func (s *pgStore) GetList(ctx context.Context, listID string, rule favorites.AccessRule) (*favorites.List, error) {
	return getList(ctx, s.db, listID, rule)
}

func getList(ctx context.Context, db bun.IDB, listID string, rule favorites.AccessRule) (*favorites.List, error) {
	if !favorites.IsValidListID(listID) {
		return nil, &favorites.ListNotFoundError{ListID: listID}
	}

	row := new(listRow)
	q := db.NewSelect().
		Model(row).
		ColumnExpr("l.id, l.name, l.description, l.user_address, l.created_at").
		ColumnExpr(listUpdatedAtExpr, rule.Caller).
		ColumnExpr(listItemsCountExpr, rule.Caller).
		ColumnExpr(listPreviewExpr, rule.Caller, favorites.PreviewSize).
		ColumnExpr(listIsPrivateExpr).
		ColumnExpr(listIsDefaultExpr).
		Where("l.id = ?", listID)
	q = applyAccessRule(q, rule).
		OrderExpr("permission ASC NULLS LAST").
		Limit(1)

	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &favorites.ListNotFoundError{ListID: listID}
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return toList(row), nil
}

// GetLists returns a page of the caller's lists, the default list always first,
// and the total number of matching lists.
func (s *pgStore) GetLists(ctx context.Context, opts favorites.ListsOptions) ([]*favorites.List, int, error) {
	var rows []listRow
	q := s.db.NewSelect().
		Model(&rows).
		ColumnExpr("l.id, l.name, l.description, l.user_address, l.created_at").
		ColumnExpr(listUpdatedAtExpr, opts.UserAddress).
		ColumnExpr(ownItemsCountExpr, opts.UserAddress).
		ColumnExpr(ownPreviewExpr, opts.UserAddress, favorites.PreviewSize).
		ColumnExpr(listIsPrivateExpr).
		ColumnExpr(listIsDefaultExpr).
		ColumnExpr("COUNT(*) OVER() AS lists_count").
		Where("l.user_address IN (?)", bun.In([]string{opts.UserAddress, favorites.DefaultListUserAddress}))
	q = applyListsOptions(q, opts)

	if err := q.Scan(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to get lists: %w", err)
	}

	total, err := pageTotal(ctx, q, rows, opts.Offset, func(r *listRow) int { return r.ListsCount })
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count lists: %w", err)
	}

	lists := make([]*favorites.List, len(rows))
	for i := range rows {
		lists[i] = toList(&rows[i])
	}
	return lists, total, nil
}

// CreateList inserts a list and, unless it is private, the grant that makes it public.
func (s *pgStore) CreateList(ctx context.Context, newList favorites.NewList) (*favorites.List, error) {
	return pgutil.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.Tx) (*favorites.List, error) {
		dao := &ListDao{
			Name:        newList.Name,
			Description: newList.Description,
			UserAddress: newList.UserAddress,
		}
		if _, err := tx.NewInsert().Model(dao).Returning("id").Exec(ctx); err != nil {
			return nil, err
		}
		if !newList.Private {
			if err := grantPublic(ctx, tx, dao.ID, newList.UserAddress); err != nil {
				return nil, err
			}
		}
		// Triggers may have touched the row; read it back as stored.
		return getList(ctx, tx, dao.ID, favorites.AccessRule{Caller: newList.UserAddress})
	}, func(err error) error {
		if name, ok := pgutil.ConstraintName(err); ok && name == ConstraintListName {
			return &favorites.DuplicatedListError{Name: newList.Name}
		}
		return fmt.Errorf("%w: %w", favorites.ErrListCreation, err)
	})
}

// UpdateList applies upd to a list owned by owner and returns the list as
// stored after the update. The default list is never updated.
func (s *pgStore) UpdateList(ctx context.Context, listID, owner string, upd favorites.ListUpdate) (*favorites.List, error) {
	if !favorites.IsValidListID(listID) || listID == favorites.DefaultListID {
		return nil, &favorites.ListNotFoundError{ListID: listID}
	}

	return pgutil.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.Tx) (*favorites.List, error) {
		var stmts []pgutil.Statement
		if upd.UpdatesColumns() {
			stmts = append(stmts, func(ctx context.Context, tx bun.Tx) error {
				return updateListColumns(ctx, tx, listID, owner, upd)
			})
		}
		if upd.Private != nil {
			if *upd.Private {
				stmts = append(stmts, func(ctx context.Context, tx bun.Tx) error {
					return revokePublic(ctx, tx, listID, owner)
				})
			} else {
				stmts = append(stmts, func(ctx context.Context, tx bun.Tx) error {
					return grantPublic(ctx, tx, listID, owner)
				})
			}
		}
		if err := pgutil.Concurrently(ctx, tx, stmts...); err != nil {
			return nil, err
		}
		return getList(ctx, tx, listID, favorites.AccessRule{Caller: owner})
	}, func(err error) error {
		var notFound *favorites.ListNotFoundError
		if errors.As(err, &notFound) {
			return notFound
		}
		if name, ok := pgutil.ConstraintName(err); ok && name == ConstraintListName && upd.Name != nil {
			return &favorites.DuplicatedListError{Name: *upd.Name}
		}
		return fmt.Errorf("%w: %w", favorites.ErrListUpdate, err)
	})
}

func updateListColumns(ctx context.Context, tx bun.Tx, listID, owner string, upd favorites.ListUpdate) error {
	q := tx.NewUpdate().
		Model((*ListDao)(nil)).
		Where("id = ?", listID).
		Where("user_address = ?", owner)
	if upd.Name != nil {
		q = q.Set("name = ?", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description = ?", *upd.Description)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &favorites.ListNotFoundError{ListID: listID}
	}
	return nil
}

// DeleteList removes a list owned by owner. Its picks and grants cascade.
// The default list is never deleted.
func (s *pgStore) DeleteList(ctx context.Context, listID, owner string) error {
	if !favorites.IsValidListID(listID) || listID == favorites.DefaultListID {
		return &favorites.ListNotFoundError{ListID: listID}
	}

	res, err := s.db.NewDelete().
		Model((*ListDao)(nil)).
		Where("id = ?", listID).
		Where("user_address = ?", owner).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	if n == 0 {
		return &favorites.ListNotFoundError{ListID: listID}
	}
	return nil
}

// NonEditableLists returns the ids in listIDs the caller may not add picks to
// or remove picks from, in request order. Unknown ids are included.
func (s *pgStore) NonEditableLists(ctx context.Context, listIDs []string, caller string) ([]string, error) {
	valid := make([]string, 0, len(listIDs))
	for _, id := range listIDs {
		if favorites.IsValidListID(id) {
			valid = append(valid, id)
		}
	}

	editable := make(map[string]struct{}, len(valid))
	if len(valid) > 0 {
		var ids []string
		q := s.db.NewSelect().
			Model((*ListDao)(nil)).
			ColumnExpr("DISTINCT l.id").
			Where("l.id IN (?)", bun.In(valid))
		q = applyAccessRule(q, favorites.AccessRule{
			Caller:              caller,
			IncludeDefaultOwner: true,
			Required:            favorites.PermissionEdit,
		})
		// Only the id is needed; the permission column is dropped by the outer select.
		if err := s.db.NewSelect().
			TableExpr("(?) AS editable", q).
			ColumnExpr("editable.id").
			Scan(ctx, &ids); err != nil {
			return nil, fmt.Errorf("failed to check editable lists: %w", err)
		}
		for _, id := range ids {
			editable[id] = struct{}{}
		}
	}

	var offending []string
	for _, id := range listIDs {
		if _, ok := editable[id]; !ok {
			offending = append(offending, id)
		}
	}
	return offending, nil
}
