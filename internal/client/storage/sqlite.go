package storage

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/ekaraman/skyfare/internal/client/storage/migrations"
	"github.com/ekaraman/skyfare/internal/logging"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists key-value pairs in a single-table sqlite database.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

// Open initializes the sqlite engine at dsn and runs the embedded schema
// migrations. On any initialization failure it logs the cause and returns a
// degraded store instead of an error, so callers never have to handle a broken
// storage engine.
func Open(ctx context.Context, dsn string, log logging.Logger) Store {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Error(ctx, "storage: open failed, running degraded", "dsn", dsn, "error", err)
		return NewDegraded(log)
	}

	if err := runMigrations(ctx, db); err != nil {
		log.Error(ctx, "storage: migrations failed, running degraded", "dsn", dsn, "error", err)
		_ = db.Close()
		return NewDegraded(log)
	}

	return &SQLiteStore{db: db, log: log}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		s.log.Warn(ctx, "storage: set failed", "key", key, "error", err)
	}
}

func (s *SQLiteStore) GetString(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.log.Warn(ctx, "storage: get failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		s.log.Warn(ctx, "storage: delete failed", "key", key, "error", err)
	}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Degraded is the no-op store substituted when the engine fails to
// initialize: writes are suppressed, reads report absence.
type Degraded struct {
	log logging.Logger
}

func NewDegraded(log logging.Logger) *Degraded {
	return &Degraded{log: log}
}

func (d *Degraded) Set(ctx context.Context, key, value string) {
	d.log.Debug(ctx, "storage: degraded, dropping write", "key", key)
}

func (d *Degraded) GetString(ctx context.Context, key string) (string, bool) {
	return "", false
}

func (d *Degraded) Delete(ctx context.Context, key string) {}
