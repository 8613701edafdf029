package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tpgillam/cuneifyplus/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SignStore = (*Store)(nil)

// Store is a SQLite-backed sign store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a sign store at the specified data directory.
// If dataDir is empty, defaults to ~/.cuneify/data/signs.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cuneify", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "signs.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the glyph for a sign.
func (s *Store) Get(ctx context.Context, sign string) (string, bool, error) {
	var glyph string
	err := s.db.QueryRowContext(ctx,
		"SELECT glyph FROM signs WHERE sign = ?", sign).Scan(&glyph)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading sign %q: %w", sign, err)
	}
	return glyph, true, nil
}

// Put stores or overwrites the glyph for a sign.
func (s *Store) Put(ctx context.Context, sign, glyph string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO signs (sign, glyph, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(sign) DO UPDATE SET
			glyph = excluded.glyph,
			updated_at = excluded.updated_at
	`, sign, glyph, now, now)
	if err != nil {
		return fmt.Errorf("storing sign %q: %w", sign, err)
	}
	return nil
}

// Delete removes a sign. Deleting an absent sign is not an error.
func (s *Store) Delete(ctx context.Context, sign string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM signs WHERE sign = ?", sign); err != nil {
		return fmt.Errorf("deleting sign %q: %w", sign, err)
	}
	return nil
}

// All returns every stored mapping.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT sign, glyph FROM signs")
	if err != nil {
		return nil, fmt.Errorf("listing signs: %w", err)
	}
	defer rows.Close()

	signs := make(map[string]string)
	for rows.Next() {
		var sign, glyph string
		if err := rows.Scan(&sign, &glyph); err != nil {
			return nil, fmt.Errorf("scanning sign: %w", err)
		}
		signs[sign] = glyph
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating signs: %w", err)
	}
	return signs, nil
}

// Count returns the number of stored mappings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM signs").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting signs: %w", err)
	}
	return n, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_signs.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
