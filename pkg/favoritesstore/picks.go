package favoritesstore

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	"github.com/chainsafe/marketplace-favorites/pkg/pgutil"
)

// CreatePick inserts a pick and records the picker's voting power in one
// transaction. A nil power keeps any stored score.
func (s *pgStore) CreatePick(ctx context.Context, pick favorites.Pick, power *int64) (*favorites.Pick, error) {
	if pick.CreatedAt.IsZero() {
		pick.CreatedAt = time.Now().UTC()
	}

	err := pgutil.Exec(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		return pgutil.Concurrently(ctx, tx,
			func(ctx context.Context, tx bun.Tx) error {
				_, err := tx.NewInsert().Model(toPickDao(&pick)).Returning("NULL").Exec(ctx)
				return err
			},
			func(ctx context.Context, tx bun.Tx) error {
				return upsertVotingPower(ctx, tx, pick.UserAddress, power)
			},
		)
	}, func(err error) error {
		if name, ok := pgutil.ConstraintName(err); ok {
			switch name {
			case ConstraintPick:
				return &favorites.PickAlreadyExistsError{ListID: pick.ListID, ItemID: pick.ItemID}
			case ConstraintPickList:
				return &favorites.ListNotFoundError{ListID: pick.ListID}
			}
		}
		return fmt.Errorf("%w: %w", favorites.ErrPickCreation, err)
	})
	if err != nil {
		return nil, err
	}
	return &pick, nil
}

// DeletePick removes the caller's pick of an item in a list.
func (s *pgStore) DeletePick(ctx context.Context, listID, itemID, caller string) error {
	if !favorites.IsValidListID(listID) {
		return &favorites.PickNotFoundError{ListID: listID, ItemID: itemID}
	}

	res, err := s.db.NewDelete().
		Model((*PickDao)(nil)).
		Where("list_id = ?", listID).
		Where("item_id = ?", itemID).
		Where("user_address = ?", caller).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete pick: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete pick: %w", err)
	}
	if n == 0 {
		return &favorites.PickNotFoundError{ListID: listID, ItemID: itemID}
	}
	return nil
}

// GetPicksByList returns the picks of a list the caller may see, newest first:
// their own, and every pick when they hold a grant on the list for themselves
// or for everyone.
func (s *pgStore) GetPicksByList(ctx context.Context, listID string, opts favorites.PicksOptions) ([]*favorites.Pick, int, error) {
	if !favorites.IsValidListID(listID) {
		return []*favorites.Pick{}, 0, nil
	}

	var rows []pickRow
	q := s.db.NewSelect().
		Model(&rows).
		ColumnExpr("p.item_id, p.user_address, p.list_id, p.created_at").
		ColumnExpr("COUNT(*) OVER() AS picks_count").
		Where("p.list_id = ?", listID).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("p.user_address = ?", opts.UserAddress).
				WhereOr("EXISTS (SELECT 1 FROM acl AS a WHERE a.list_id = p.list_id AND a.grantee IN (?))",
					bun.In([]string{opts.UserAddress, favorites.Everyone}))
		}).
		OrderExpr("p.created_at DESC").
		OrderExpr("p.item_id ASC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to get picks: %w", err)
	}

	total, err := pageTotal(ctx, q, rows, opts.Offset, func(r *pickRow) int { return r.PicksCount })
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count picks: %w", err)
	}

	picks := make([]*favorites.Pick, len(rows))
	for i := range rows {
		picks[i] = toPick(&rows[i])
	}
	return picks, total, nil
}

// GetPicksStats returns one row per distinct requested item id, in no
// particular order. Picks count when the picker's voting power reaches the
// threshold, or when the picker is the caller.
func (s *pgStore) GetPicksStats(ctx context.Context, itemIDs []string, opts favorites.StatsOptions) ([]*favorites.PickStats, error) {
	if len(itemIDs) == 0 {
		return []*favorites.PickStats{}, nil
	}

	var rows []statsRow
	q := s.db.NewSelect().
		TableExpr("(SELECT DISTINCT unnest(?::text[]) AS item_id) AS ids", pgdialect.Array(itemIDs)).
		ColumnExpr("ids.item_id").
		Join("LEFT JOIN picks AS p ON p.item_id = ids.item_id").
		Join("LEFT JOIN voting AS v ON v.user_address = p.user_address").
		GroupExpr("ids.item_id")
	if opts.UserAddress != "" {
		q = q.
			ColumnExpr("COUNT(DISTINCT p.user_address) FILTER (WHERE v.power >= ? OR p.user_address = ?) AS count",
				opts.Threshold(), opts.UserAddress).
			ColumnExpr("COALESCE(BOOL_OR(p.user_address = ?), FALSE) AS picked_by_user", opts.UserAddress)
	} else {
		q = q.ColumnExpr("COUNT(DISTINCT p.user_address) FILTER (WHERE v.power >= ?) AS count", opts.Threshold())
	}

	if err := q.Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to get picks stats: %w", err)
	}

	stats := make([]*favorites.PickStats, len(rows))
	for i, row := range rows {
		stats[i] = &favorites.PickStats{
			ItemID:       row.ItemID,
			Count:        row.Count,
			PickedByUser: row.PickedByUser,
		}
	}
	return stats, nil
}

// GetPickers returns the distinct addresses that picked an item with enough
// voting power, the caller first, then the most recent.
func (s *pgStore) GetPickers(ctx context.Context, itemID string, opts favorites.PickersOptions) ([]*favorites.Picker, int, error) {
	var rows []pickerRow
	q := s.db.NewSelect().
		Model(&rows).
		ColumnExpr("p.user_address").
		ColumnExpr("MAX(p.created_at) AS created_at").
		ColumnExpr("COUNT(*) OVER() AS picks_count").
		Join("LEFT JOIN voting AS v ON v.user_address = p.user_address").
		Where("p.item_id = ?", itemID).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("v.power >= ?", opts.Threshold()).
				WhereOr("p.user_address = ?", opts.UserAddress)
		}).
		GroupExpr("p.user_address").
		OrderExpr("(p.user_address = ?) DESC", opts.UserAddress).
		OrderExpr("MAX(p.created_at) DESC")
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to get pickers: %w", err)
	}

	total, err := pageTotal(ctx, q, rows, opts.Offset, func(r *pickerRow) int { return r.PicksCount })
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count pickers: %w", err)
	}

	pickers := make([]*favorites.Picker, len(rows))
	for i, row := range rows {
		pickers[i] = &favorites.Picker{UserAddress: row.UserAddress, CreatedAt: row.CreatedAt}
	}
	return pickers, total, nil
}

// PickAndUnpick adds the caller's pick of itemID to every list of bulk.PickedFor
// and removes it from every list of bulk.UnpickedFrom in one transaction.
// Picks that already exist are left untouched.
func (s *pgStore) PickAndUnpick(ctx context.Context, itemID, caller string, bulk favorites.BulkPick, power *int64) error {
	now := time.Now().UTC()

	return pgutil.Exec(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var stmts []pgutil.Statement
		if len(bulk.PickedFor) > 0 {
			daos := make([]PickDao, len(bulk.PickedFor))
			for i, listID := range bulk.PickedFor {
				daos[i] = PickDao{ItemID: itemID, UserAddress: caller, ListID: listID, CreatedAt: now}
			}
			stmts = append(stmts,
				func(ctx context.Context, tx bun.Tx) error {
					_, err := tx.NewInsert().
						Model(&daos).
						On("CONFLICT ON CONSTRAINT " + ConstraintPick + " DO NOTHING").
						Returning("NULL").
						Exec(ctx)
					return err
				},
				func(ctx context.Context, tx bun.Tx) error {
					return upsertVotingPower(ctx, tx, caller, power)
				},
			)
		}
		if len(bulk.UnpickedFrom) > 0 {
			stmts = append(stmts, func(ctx context.Context, tx bun.Tx) error {
				_, err := tx.NewDelete().
					Model((*PickDao)(nil)).
					Where("item_id = ?", itemID).
					Where("user_address = ?", caller).
					Where("list_id IN (?)", bun.In(bulk.UnpickedFrom)).
					Exec(ctx)
				return err
			})
		}
		return pgutil.Concurrently(ctx, tx, stmts...)
	}, func(err error) error {
		if name, ok := pgutil.ConstraintName(err); ok && name == ConstraintPickList {
			return &favorites.ListsNotFoundError{ListIDs: bulk.PickedFor}
		}
		return fmt.Errorf("%w: %w", favorites.ErrPickCreation, err)
	})
}
