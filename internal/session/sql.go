package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SQL dialects understood by SQLStore.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQLStore keeps the session in the session_kv table created by migration.EnsureMigrated.
// With SQLite it survives process restarts; with PostgreSQL it is shared across machines.
type SQLStore struct {
	db      *sql.DB
	dialect string
	now     func() time.Time
}

// NewSQLStore wraps an already migrated database.
func NewSQLStore(db *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, now: time.Now}
}

func (s *SQLStore) Load(ctx context.Context) (Session, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT key, value FROM session_kv WHERE key IN (?, ?)`), KeyToken, KeyEmail)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	var out Session
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Session{}, fmt.Errorf("scan session: %w", err)
		}
		switch k {
		case KeyToken:
			out.Token = v
		case KeyEmail:
			out.Email = v
		}
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if out.Token == "" {
		return Session{}, ErrNoSession
	}
	return out, nil
}

func (s *SQLStore) Save(ctx context.Context, sess Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save session: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	upsert := s.rebind(`INSERT INTO session_kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	ts := s.now().UTC().Format(time.RFC3339Nano)
	for _, kv := range [][2]string{{KeyToken, sess.Token}, {KeyEmail, sess.Email}} {
		if _, err := tx.ExecContext(ctx, upsert, kv[0], kv[1], ts); err != nil {
			return fmt.Errorf("save session %s: %w", kv[0], err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save session: %w", err)
	}
	return nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM session_kv WHERE key IN (?, ?)`), KeyToken, KeyEmail); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
