// Package favoritesstore is the postgres implementation of the lists, picks,
// access and voting power storage.
package favoritesstore

import (
	"github.com/uptrace/bun"
)

// Constraint names the store translates into domain errors.
const (
	ConstraintListName    = "name_user_address_unique"
	ConstraintPick        = "item_id_user_address_list_id_unique"
	ConstraintAccess      = "list_id_permission_grantee_unique"
	ConstraintVotingPower = "voting_power_check"
	ConstraintPermission  = "acl_permission_check"
	ConstraintPickList    = "picks_list_id_fkey"
	ConstraintAccessList  = "acl_list_id_fkey"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the favorites store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}
