package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a file-backed Store for callers whose "session"
// outlives the process. It keeps a single-connection writer alongside a
// read-only connection, so concurrent readers never contend with the
// writer.
type SQLiteStore struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite-backed store at the
// given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	if _, err := writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`); err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	return &SQLiteStore{readDB: readDB, writeDB: writeDB}, nil
}

// Close releases both database connections.
func (s *SQLiteStore) Close() error {
	var firstErr error
	for _, db := range []*sql.DB{s.readDB, s.writeDB} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *SQLiteStore) Get(key string) ([]byte, bool) {
	var val []byte
	err := s.readDB.QueryRow("SELECT value FROM entries WHERE key = ?", key).Scan(&val)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *SQLiteStore) Set(key string, val []byte) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO entries (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, val)
	if err != nil {
		return fmt.Errorf("upserting entry %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) {
	_, _ = s.writeDB.Exec("DELETE FROM entries WHERE key = ?", key)
}

func (s *SQLiteStore) Keys() []string {
	rows, err := s.readDB.Query("SELECT key FROM entries ORDER BY key")
	if err != nil {
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return keys
		}
		keys = append(keys, k)
	}
	return keys
}

func (s *SQLiteStore) Len() int {
	var n int
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0
	}
	return n
}
