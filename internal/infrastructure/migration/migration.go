package migration

import (
	"context"

	"cv-builder/pkg/logger"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log logger.Logger) error {
	log.Info("Starting database migrations")

	for _, m := range Migrations() {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			log.Error("Migration failed", err, zap.String("name", m.Name))
			return err
		}
		log.Info("Migration completed", zap.String("name", m.Name))
	}

	log.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration. Every statement is idempotent.
type Migration struct {
	Name string
	SQL  string
}

func Migrations() []Migration {
	return []Migration{
		{
			Name: "create_cvs_table",
			SQL: `
		CREATE TABLE IF NOT EXISTS cvs (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			document JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		},
		{
			Name: "create_cvs_owner_index",
			SQL: `
		CREATE INDEX IF NOT EXISTS idx_cvs_owner_updated
		ON cvs (owner_id, updated_at DESC);`,
		},
	}
}
