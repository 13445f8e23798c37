package favoritesdb

import (
	"context"
	"log"

	"github.com/chainsafe/marketplace-favorites/pkg/favoritesstore"
	mghelper "github.com/chainsafe/marketplace-favorites/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

const touchListFunction = `CREATE OR REPLACE FUNCTION lists_touch_updated_at() RETURNS trigger AS $$
BEGIN
	NEW.updated_at = now();
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating lists table...")
		if err := mghelper.CreateSchema(ctx, db, &favoritesstore.ListDao{}); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, "lists", favoritesstore.ConstraintListName,
			"UNIQUE (name, user_address)"); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, touchListFunction); err != nil {
			return err
		}
		if err := mghelper.CreateTrigger(ctx, db, "lists", "lists_touch_updated_at",
			"BEFORE UPDATE", "lists_touch_updated_at()"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &favoritesstore.ListDao{}, "user_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping lists table...")
		if err := mghelper.DropTables(ctx, db, &favoritesstore.ListDao{}); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, "DROP FUNCTION IF EXISTS lists_touch_updated_at()")
		return err
	})
}
