package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"directory/internal/errors"
	"directory/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// runMigrations applies every pending embedded migration.
func runMigrations(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return errors.Wrap(err, "failed to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	for _, result := range results {
		logger.Info("Applied migration",
			slog.Int64("version", result.Source.Version),
			slog.String("path", result.Source.Path),
			slog.Duration("duration", result.Duration),
		)
	}

	return nil
}
