package favoritesdb

import (
	"context"
	"log"

	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	"github.com/chainsafe/marketplace-favorites/pkg/favoritesstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding default list...")
		_, err := db.NewInsert().
			Model(&favoritesstore.ListDao{
				ID:          favorites.DefaultListID,
				Name:        favorites.DefaultListName,
				UserAddress: favorites.DefaultListUserAddress,
			}).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing default list...")
		_, err := db.NewDelete().
			Model((*favoritesstore.ListDao)(nil)).
			Where("id = ?", favorites.DefaultListID).
			Exec(ctx)
		return err
	})
}
