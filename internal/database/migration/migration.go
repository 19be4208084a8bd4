package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Statements are portable between SQLite and PostgreSQL.
var steps = []migrationStep{
	{
		Name: "create_table_session_kv",
		SQL: `CREATE TABLE IF NOT EXISTS session_kv (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`,
	},
}

// EnsureMigrated creates the session key/value table if it is missing. Every step is idempotent.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	start := time.Now()
	logger = logger.With(zap.String("component", "database"))
	logger.Debug("db_migration_start")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logger.Debug("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration", time.Since(stepStart)),
		)
	}

	logger.Debug("db_migration_success", zap.Duration("duration", time.Since(start)))
	return nil
}
