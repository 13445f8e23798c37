package favoritesdb

import (
	"context"
	"log"

	"github.com/chainsafe/marketplace-favorites/pkg/favoritesstore"
	mghelper "github.com/chainsafe/marketplace-favorites/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating voting table...")
		if err := mghelper.CreateSchema(ctx, db, &favoritesstore.VotingPowerDao{}); err != nil {
			return err
		}
		return mghelper.AddConstraint(ctx, db, "voting", favoritesstore.ConstraintVotingPower, "CHECK (power >= 0)")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping voting table...")
		return mghelper.DropTables(ctx, db, &favoritesstore.VotingPowerDao{})
	})
}
