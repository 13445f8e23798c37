package favoritesstore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	"github.com/chainsafe/marketplace-favorites/pkg/pgutil"
)

// The owner guard lives in the statement so that grants can be written
// concurrently with other statements of the same transaction.
const (
	insertOwnedAccessQuery = `INSERT INTO acl (list_id, permission, grantee)
		SELECT l.id, ?, ? FROM lists AS l WHERE l.id = ? AND l.user_address = ?
		ON CONFLICT ON CONSTRAINT ` + ConstraintAccess + ` DO NOTHING`
	deleteOwnedAccessQuery = `DELETE FROM acl AS a USING lists AS l
		WHERE a.list_id = l.id AND l.id = ? AND l.user_address = ?
		AND a.permission = ? AND a.grantee = ?`
)

// grantPublic makes a list owned by owner visible to everyone. It is idempotent.
func grantPublic(ctx context.Context, tx bun.IDB, listID, owner string) error {
	_, err := tx.ExecContext(ctx, insertOwnedAccessQuery,
		string(favorites.PermissionView), favorites.Everyone, listID, owner)
	return err
}

// revokePublic removes the public grant of a list owned by owner. It is idempotent.
func revokePublic(ctx context.Context, tx bun.IDB, listID, owner string) error {
	_, err := tx.ExecContext(ctx, deleteOwnedAccessQuery,
		listID, owner, string(favorites.PermissionView), favorites.Everyone)
	return err
}

// CreateAccess stores a grant. Storing an existing grant is a no-op. The caller
// is expected to have checked that the list exists and belongs to the acting address.
func (s *pgStore) CreateAccess(ctx context.Context, access favorites.Access) error {
	return pgutil.Exec(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&AccessDao{
				ListID:     access.ListID,
				Permission: string(access.Permission),
				Grantee:    access.Grantee,
			}).
			On("CONFLICT ON CONSTRAINT " + ConstraintAccess + " DO NOTHING").
			Exec(ctx)
		return err
	}, func(err error) error {
		if name, ok := pgutil.ConstraintName(err); ok {
			switch name {
			case ConstraintAccess:
				return &favorites.DuplicatedAccessError{
					ListID:     access.ListID,
					Permission: access.Permission,
					Grantee:    access.Grantee,
				}
			case ConstraintAccessList:
				return &favorites.ListNotFoundError{ListID: access.ListID}
			}
		}
		return fmt.Errorf("%w: %w", favorites.ErrAccessCreation, err)
	})
}

// DeleteAccess removes a grant from a list owned by owner.
func (s *pgStore) DeleteAccess(ctx context.Context, access favorites.Access, owner string) error {
	if !favorites.IsValidListID(access.ListID) {
		return &favorites.ListNotFoundError{ListID: access.ListID}
	}

	res, err := s.db.ExecContext(ctx, deleteOwnedAccessQuery,
		access.ListID, owner, string(access.Permission), access.Grantee)
	if err != nil {
		return fmt.Errorf("failed to delete access: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete access: %w", err)
	}
	if n == 0 {
		return &favorites.AccessNotFoundError{
			ListID:     access.ListID,
			Permission: access.Permission,
			Grantee:    access.Grantee,
		}
	}
	return nil
}
