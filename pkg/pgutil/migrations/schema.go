// Package migrations holds the schema helpers used by bun migrations and the
// command line driver of the migrate binaries.
package migrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// CreateSchema creates the table of every model unless it already exists.
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	return nil
}

// DropTables drops the table of every model, cascading to dependent objects.
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}
	return nil
}

// CreateModelIndexes creates one idx_<table>_<column> index per column of the
// model's table.
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	for _, column := range columns {
		name, err := modelIndexName(db, model, column)
		if err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model(model).
			Index(name).
			Column(column).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index %s: %w", name, err)
		}
	}
	return nil
}

// AddConstraint adds a named table constraint. definition is the constraint
// body, e.g. "UNIQUE (a, b)". The store matches driver errors on these names.
func AddConstraint(ctx context.Context, db bun.IDB, tableName, name, definition string) error {
	if _, err := db.ExecContext(ctx, "ALTER TABLE ? ADD CONSTRAINT ? "+definition,
		bun.Ident(tableName), bun.Ident(name)); err != nil {
		return fmt.Errorf("failed to add constraint %s: %w", name, err)
	}
	return nil
}

// CreateTrigger (re)creates a row level trigger on tableName that runs
// function on timing, e.g. "AFTER INSERT OR DELETE".
func CreateTrigger(ctx context.Context, db bun.IDB, tableName, name, timing, function string) error {
	if _, err := db.ExecContext(ctx, "DROP TRIGGER IF EXISTS ? ON ?",
		bun.Ident(name), bun.Ident(tableName)); err != nil {
		return fmt.Errorf("failed to drop trigger %s: %w", name, err)
	}
	if _, err := db.ExecContext(ctx, "CREATE TRIGGER ? "+timing+" ON ? FOR EACH ROW EXECUTE FUNCTION "+function,
		bun.Ident(name), bun.Ident(tableName)); err != nil {
		return fmt.Errorf("failed to create trigger %s: %w", name, err)
	}
	return nil
}

func modelIndexName(db bun.IDB, model any, column string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	table := db.NewCreateIndex().Model(model).GetTableName()
	if table == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}
	return fmt.Sprintf("idx_%s_%s", strings.NewReplacer(`"`, "", ".", "_").Replace(table), column), nil
}
