package favoritesstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// upsertVotingPower records the voting power of address. A known power
// replaces the stored one; an unknown power only creates a zero baseline and
// never overwrites a stored score.
func upsertVotingPower(ctx context.Context, db bun.IDB, address string, power *int64) error {
	dao := &VotingPowerDao{UserAddress: address}
	q := db.NewInsert().Model(dao).Returning("NULL")
	if power != nil {
		dao.Power = *power
		q = q.On("CONFLICT (user_address) DO UPDATE").Set("power = EXCLUDED.power")
	} else {
		q = q.On("CONFLICT (user_address) DO NOTHING")
	}
	_, err := q.Exec(ctx)
	return err
}

// GetVotingPower returns the stored voting power of address and whether one is stored.
func (s *pgStore) GetVotingPower(ctx context.Context, address string) (int64, bool, error) {
	dao := new(VotingPowerDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("v.user_address = ?", address).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get voting power: %w", err)
	}
	return dao.Power, true, nil
}
