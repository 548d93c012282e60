// Package migrations holds the schema helpers used by migration files and the
// command runner behind the migrate binary.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

// Commands understood by Run.
const (
	CommandInit   = "init"
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
)

// ErrNoCommand is returned by Run when no command is given.
var ErrNoCommand = errors.New("no migration command provided")

const usageText = `Usage:
  migrate [flags] <command>

Commands:
  init    creates the migration bookkeeping tables
  up      applies all pending migrations
  down    rolls back the last migration group
  status  prints applied and pending migrations

Flags:
`

// Usage writes the command help to w.
func Usage(w io.Writer) {
	_, _ = io.WriteString(w, usageText)
}

// CreateSchema creates a table per model when it does not exist yet
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

// DropTables drops the table of each model, cascading to dependents
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("drop table for %T: %w", model, err)
		}
	}
	return nil
}

// CreateIndex creates an index over one or more columns of a table.
func CreateIndex(ctx context.Context, db bun.IDB, table, index string, columns ...string) error {
	if len(columns) == 0 {
		return fmt.Errorf("index %s: no columns", index)
	}
	_, err := db.NewCreateIndex().
		Table(table).
		Index(index).
		Column(columns...).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create index %s: %w", index, err)
	}
	return nil
}

// DropIndex drops an index if it exists.
func DropIndex(ctx context.Context, db bun.IDB, index string) error {
	if _, err := db.NewDropIndex().Index(index).IfExists().Exec(ctx); err != nil {
		return fmt.Errorf("drop index %s: %w", index, err)
	}
	return nil
}

// Run executes the migration command in args[0].
func Run(ctx context.Context, migrator *migrate.Migrator, logger *zap.Logger, args ...string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	switch args[0] {
	case CommandInit:
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		logger.Info("Migration tables created")
		return nil

	case CommandUp:
		return withLock(ctx, migrator, logger, func() error {
			group, err := migrator.Migrate(ctx)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if group.IsZero() {
				logger.Info("No new migrations to run, database is up to date")
				return nil
			}
			logger.Info("Migrated", zap.Stringer("group", group))
			return nil
		})

	case CommandDown:
		return withLock(ctx, migrator, logger, func() error {
			group, err := migrator.Rollback(ctx)
			if err != nil {
				return fmt.Errorf("rollback: %w", err)
			}
			if group.IsZero() {
				logger.Info("No migrations to roll back")
				return nil
			}
			logger.Info("Rolled back", zap.Stringer("group", group))
			return nil
		})

	case CommandStatus:
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return fmt.Errorf("status: %w", err)
		}
		logger.Info("Migration status",
			zap.Stringer("migrations", ms),
			zap.Stringer("unapplied", ms.Unapplied()),
			zap.Stringer("last_group", ms.LastGroup()),
		)
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func withLock(ctx context.Context, migrator *migrate.Migrator, logger *zap.Logger, fn func() error) error {
	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			logger.Warn("Failed to release migration lock", zap.Error(err))
		}
	}()
	return fn()
}
