package favoritesdb

import (
	"context"
	"log"

	"github.com/chainsafe/marketplace-favorites/pkg/favoritesstore"
	mghelper "github.com/chainsafe/marketplace-favorites/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

// touchParentListFunction bumps the updated_at of the list a pick or grant
// row belongs to. It is shared by the picks and acl triggers.
const touchParentListFunction = `CREATE OR REPLACE FUNCTION touch_parent_list() RETURNS trigger AS $$
BEGIN
	IF TG_OP = 'DELETE' THEN
		UPDATE lists SET updated_at = now() WHERE id = OLD.list_id;
		RETURN OLD;
	END IF;
	UPDATE lists SET updated_at = now() WHERE id = NEW.list_id;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating picks table...")
		if err := mghelper.CreateSchema(ctx, db, &favoritesstore.PickDao{}); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, "picks", favoritesstore.ConstraintPick,
			"UNIQUE (item_id, user_address, list_id)"); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, "picks", favoritesstore.ConstraintPickList,
			"FOREIGN KEY (list_id) REFERENCES lists (id) ON DELETE CASCADE"); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, touchParentListFunction); err != nil {
			return err
		}
		if err := mghelper.CreateTrigger(ctx, db, "picks", "picks_touch_list",
			"AFTER INSERT OR DELETE", "touch_parent_list()"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &favoritesstore.PickDao{}, "item_id", "user_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping picks table...")
		if err := mghelper.DropTables(ctx, db, &favoritesstore.PickDao{}); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, "DROP FUNCTION IF EXISTS touch_parent_list()")
		return err
	})
}
