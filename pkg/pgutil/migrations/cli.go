package migrations

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/uptrace/bun/migrate"
)

// ErrNoCommand is returned when a migrate binary is run without a command.
var ErrNoCommand = errors.New("no command provided")

type command struct {
	name string
	help string
	// locked commands hold the migration lock while they run.
	locked bool
	run    func(ctx context.Context, m *migrate.Migrator, out io.Writer) error
}

var commands = []command{
	{name: "init", help: "create the migration bookkeeping tables", run: initTables},
	{name: "up", help: "apply every pending migration as one group", locked: true, run: migrateUp},
	{name: "down", help: "roll back the last applied group", locked: true, run: migrateDown},
	{name: "status", help: "print applied and pending migrations", run: printStatus},
	{name: "unlock", help: "release a lock left by an interrupted run", run: unlock},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// RunMigrations runs the command named by args[0] against migrator and
// reports its outcome to out.
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, out io.Writer, args ...string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	cmd, ok := lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}

	if cmd.locked {
		if err := migrator.Lock(ctx); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}
		defer func() {
			if err := migrator.Unlock(ctx); err != nil {
				fmt.Fprintf(out, "failed to release migration lock: %v\n", err)
			}
		}()
	}
	return cmd.run(ctx, migrator, out)
}

func initTables(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
	if err := m.Init(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "migration tables created")
	return nil
}

func migrateUp(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
	group, err := m.Migrate(ctx)
	if err != nil {
		return err
	}
	if group.IsZero() {
		fmt.Fprintln(out, "database is up to date")
		return nil
	}
	fmt.Fprintf(out, "migrated to %s\n", group)
	return nil
}

func migrateDown(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
	group, err := m.Rollback(ctx)
	if err != nil {
		return err
	}
	if group.IsZero() {
		fmt.Fprintln(out, "nothing to roll back")
		return nil
	}
	fmt.Fprintf(out, "rolled back %s\n", group)
	return nil
}

func printStatus(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
	ms, err := m.MigrationsWithStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "applied: %d\n", len(ms.Applied()))
	pending := ms.Unapplied()
	if len(pending) == 0 {
		fmt.Fprintln(out, "pending: none")
	} else {
		fmt.Fprintf(out, "pending: %s\n", pending)
	}
	fmt.Fprintf(out, "last group: %s\n", ms.LastGroup())
	return nil
}

func unlock(ctx context.Context, m *migrate.Migrator, out io.Writer) error {
	if err := m.Unlock(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "migration lock released")
	return nil
}

// WriteUsage writes the command line help of a migrate binary to w.
func WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n  %s [-config path] <command>\n\nCommands:\n", filepath.Base(os.Args[0]))
	for _, c := range commands {
		fmt.Fprintf(w, "  %-7s %s\n", c.name, c.help)
	}
	fmt.Fprintln(w, "\nFlags:")
}

// Usage prints the help and exits. It is meant for flag.Usage.
func Usage() {
	WriteUsage(os.Stderr)
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf prints a message followed by the help, then exits.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	Usage()
}
