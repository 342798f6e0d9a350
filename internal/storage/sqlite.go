// Package storage provides SQLite-based persistence for best scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Each game owns exactly one value: a decimal string stored under the key
// "<game>.best_score". Values that do not parse as a non-negative integer
// read as 0.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const bestSuffix = ".best_score"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// BestEntry is a game's stored best score.
type BestEntry struct {
	GameID    string
	Score     int
	UpdatedAt time.Time
}

// BestKey returns the storage key for a game's best score.
func BestKey(gameID string) string {
	return gameID + bestSuffix
}

// ParseScore converts a stored value to a score. Malformed values yield 0.
func ParseScore(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores a raw value under key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// BestScore returns the stored best score for the game.
// Missing or malformed values return 0.
func (s *Store) BestScore(gameID string) (int, error) {
	value, ok, err := s.Get(BestKey(gameID))
	if err != nil || !ok {
		return 0, err
	}
	return ParseScore(value), nil
}

// Best implements core.ScoreBook. Read errors are treated as no score.
func (s *Store) Best(gameID string) int {
	score, err := s.BestScore(gameID)
	if err != nil {
		return 0
	}
	return score
}

// Record implements core.ScoreBook. The compare and write run in one
// transaction so concurrent sessions cannot lower the stored value.
func (s *Store) Record(gameID string, score int) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	key := BestKey(gameID)
	current := 0
	var value string
	err = tx.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return false, fmt.Errorf("storage: cannot read best score: %w", err)
	default:
		current = ParseScore(value)
	}

	if score <= current {
		return false, nil
	}

	_, err = tx.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, strconv.Itoa(score),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save best score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit best score: %w", err)
	}
	return true, nil
}

// Bests returns every stored best score, ordered by game ID.
func (s *Store) Bests() ([]BestEntry, error) {
	rows, err := s.db.Query(
		`SELECT key, value, updated_at
		 FROM kv
		 WHERE substr(key, -length(?)) = ?
		 ORDER BY key`,
		bestSuffix, bestSuffix,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var key, value string
		var updatedAt any
		if err := rows.Scan(&key, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e := BestEntry{
			GameID: strings.TrimSuffix(key, bestSuffix),
			Score:  ParseScore(value),
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearBest deletes the stored best score for the given game.
func (s *Store) ClearBest(gameID string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", BestKey(gameID))
	if err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return nil
}
