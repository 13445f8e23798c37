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
		log.Println("creating acl table...")
		if err := mghelper.CreateSchema(ctx, db, &favoritesstore.AccessDao{}); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, "acl", favoritesstore.ConstraintAccess,
			"UNIQUE (list_id, permission, grantee)"); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, "acl", favoritesstore.ConstraintPermission,
			"CHECK (permission IN ('view', 'edit'))"); err != nil {
			return err
		}
		if err := mghelper.AddConstraint(ctx, db, "acl", favoritesstore.ConstraintAccessList,
			"FOREIGN KEY (list_id) REFERENCES lists (id) ON DELETE CASCADE"); err != nil {
			return err
		}
		return mghelper.CreateTrigger(ctx, db, "acl", "acl_touch_list",
			"AFTER INSERT OR DELETE", "touch_parent_list()")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping acl table...")
		return mghelper.DropTables(ctx, db, &favoritesstore.AccessDao{})
	})
}
