package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const sqliteTable = "deck_cache"

// SQLiteStore persists entries in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the SQLite database at path. ":memory:" is
// accepted for tests.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite cache at %q: %w", path, err)
	}
	// A single connection avoids "database is locked" and keeps :memory: shared.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect sqlite cache: %w", err)
	}
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			cache_key TEXT PRIMARY KEY,
			cache_value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`, sqliteTable)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create table %s: %w", sqliteTable, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	query := fmt.Sprintf(`SELECT cache_value FROM %s WHERE cache_key = ?`, sqliteTable)
	err := s.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) Put(key string, value []byte) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (cache_key, cache_value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET cache_value = excluded.cache_value, updated_at = excluded.updated_at
	`, sqliteTable)
	_, err := s.db.Exec(query, key, value, time.Now().UnixMilli())
	return err
}

func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE cache_key = ?`, sqliteTable), key)
	return err
}

func (s *SQLiteStore) DeletePrefix(prefix string) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE cache_key LIKE ? ESCAPE '\'`, sqliteTable)
	res, err := s.db.Exec(query, escapeLike(prefix)+"%")
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Each visits entries in key order.
func (s *SQLiteStore) Each(fn func(key string, value []byte) error) error {
	rows, err := s.db.Query(fmt.Sprintf(`SELECT cache_key, cache_value FROM %s ORDER BY cache_key`, sqliteTable))
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
