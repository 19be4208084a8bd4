package session

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"ipoadvisor/internal/config"
	"ipoadvisor/internal/database"
	"ipoadvisor/internal/database/migration"
)

// Open builds the Store selected by cfg.Driver. The returned close func releases
// the underlying connection and is never nil.
func Open(ctx context.Context, cfg config.SessionConfig, logger *zap.Logger) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.SessionDriverMemory:
		return NewMemoryStore(), noop, nil

	case config.SessionDriverRedis:
		client, err := NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, noop, err
		}
		logger.Debug("session store ready", zap.String("driver", cfg.Driver))
		return NewRedisStore(client, cfg.Redis.KeyPrefix), client.Close, nil

	case config.SessionDriverSQLite, config.SessionDriverPostgres:
		var (
			db      *sql.DB
			dialect string
			err     error
		)
		if cfg.Driver == config.SessionDriverSQLite {
			db, err = database.NewSQLite(cfg.SQLitePath)
			dialect = DialectSQLite
		} else {
			db, err = database.NewPostgres(cfg.Database)
			dialect = DialectPostgres
		}
		if err != nil {
			return nil, noop, fmt.Errorf("open session database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		logger.Debug("session store ready", zap.String("driver", cfg.Driver))
		return NewSQLStore(db, dialect), db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}
