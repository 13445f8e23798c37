package pgutil

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// TxFunc is a unit of work run with a transaction scoped query handle.
type TxFunc[T any] func(ctx context.Context, tx bun.Tx) (T, error)

// ErrorTranslator maps a failure raised inside a transaction to the error
// handed back to the caller.
type ErrorTranslator func(err error) error

// RunInTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; the failure is then passed through
// onError, when set, before being returned. A panic inside fn rolls back and
// is re-raised. The connection is returned to the pool on every path.
func RunInTx[T any](ctx context.Context, db *bun.DB, fn TxFunc[T], onError ErrorTranslator) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, translate(fmt.Errorf("failed to begin transaction: %w", err), onError)
	}

	done := false
	defer func() {
		if !done {
			_ = tx.Rollback()
		}
	}()

	result, err := fn(ctx, tx)
	if err != nil {
		done = true
		_ = tx.Rollback()
		return zero, translate(err, onError)
	}

	done = true
	if err := tx.Commit(); err != nil {
		return zero, translate(fmt.Errorf("failed to commit transaction: %w", err), onError)
	}
	return result, nil
}

// Exec runs fn in a transaction for units of work without a result.
func Exec(ctx context.Context, db *bun.DB, fn func(ctx context.Context, tx bun.Tx) error, onError ErrorTranslator) error {
	_, err := RunInTx(ctx, db, func(ctx context.Context, tx bun.Tx) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	}, onError)
	return err
}

// Statement is a write issued inside a transaction.
type Statement func(ctx context.Context, tx bun.Tx) error

// Concurrently issues stmts on tx at the same time and waits for all of them.
// The transaction holds a single connection, so statements must not return
// rows. All failures are joined. Nil statements are skipped.
func Concurrently(ctx context.Context, tx bun.Tx, stmts ...Statement) error {
	p := pool.New().WithErrors()
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}
		p.Go(func() error {
			return stmt(ctx, tx)
		})
	}
	return p.Wait()
}

func translate(err error, onError ErrorTranslator) error {
	if onError == nil {
		return err
	}
	return onError(err)
}

// ConstraintName returns the name of the constraint err violated. err may
// join several statement errors; the first integrity violation wins. The
// second value is false when no integrity violation is found.
func ConstraintName(err error) (string, bool) {
	switch e := err.(type) {
	case nil:
		return "", false
	case pgdriver.Error:
		if e.IntegrityViolation() {
			return e.Field('n'), true
		}
		return "", false
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			if name, ok := ConstraintName(inner); ok {
				return name, true
			}
		}
		return "", false
	case interface{ Unwrap() error }:
		return ConstraintName(e.Unwrap())
	default:
		return "", false
	}
}
