package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	"github.com/you-humble/field-orders/platform/logger"
)

// Migrator applies the SQL migrations found in a directory. It owns db and
// closes it on Close.
type Migrator struct {
	db            *sql.DB
	migrationsDir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: migrationsDir,
	}
}

// Up applies every pending migration and logs the versions it applied.
func (m *Migrator) Up(ctx context.Context) error {
	const op = "migrator.Migrator.Up"

	provider, err := goose.NewProvider(database.DialectPostgres, m.db, os.DirFS(m.migrationsDir))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, res := range results {
		logger.Info(ctx, "migration applied",
			logger.Int64("version", res.Source.Version),
			logger.String("file", res.Source.Path),
			logger.Duration("took", res.Duration),
		)
	}
	return nil
}

func (m *Migrator) Close() error { return m.db.Close() }
