package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/migrations/favoritesdb"
	"github.com/chainsafe/marketplace-favorites/pkg/pgutil"
	mghelper "github.com/chainsafe/marketplace-favorites/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for favorites database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, favoritesdb.Migrations)

	err = mghelper.RunMigrations(context.Background(), migrator, os.Stdout, flag.Args()...)
	if err != nil {
		mghelper.Exitf("%v", err)
	}
}
