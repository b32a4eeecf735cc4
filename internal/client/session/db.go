package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BrunoMontanari1303/logix-cli/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// InitDatabase opens the local sqlite database and applies the embedded
// goose migrations. The resulting handle backs the session store.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local db: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
