// Package favoritesdb holds all the migrations for the favorites database
package favoritesdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the favorites database
var Migrations = migrate.NewMigrations()
