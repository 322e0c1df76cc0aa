package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteKV struct {
	db *sql.DB
}

func NewSQLiteKV(filePath string) (*SQLiteKV, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filePath)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	st := &SQLiteKV{db: db}
	if err := st.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT entry_value FROM kv_entries WHERE entry_key = ?`, key)
	var value string
	err := row.Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteKV) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO kv_entries (entry_key, entry_value, updated_at)
		VALUES (?, ?, ?)`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE entry_key = ?`, key)
	return err
}

func (s *SQLiteKV) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
			entry_key   TEXT PRIMARY KEY,
			entry_value TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`)
	return err
}
