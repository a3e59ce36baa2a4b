package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mihara/courseflow/internal/storage/postgres/migrations"
)

// RunMigrations applies the embedded goose migrations.
// goose works through database/sql, so a transient connection is opened
// alongside the pgx pool used for queries.
func (s *Storage) RunMigrations(ctx context.Context) error {
	db, err := sql.Open("pgx", s.cfg.URL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
