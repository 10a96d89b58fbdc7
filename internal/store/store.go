package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"saleshub-cli/internal/logging"

	// modernc.org/sqlite registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	dirName        = ".saleshub"
	sqliteFileName = "saleshub.sqlite"
)

// Store points at a data directory holding the SQLite database.
type Store struct {
	Dir string
}

// DB is an open handle on the data directory's database.
type DB struct {
	sql  *sql.DB
	path string
}

func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, dirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ResolveDir picks the data directory: explicit dir, then a project-local .saleshub
// found from the working directory upwards, then config.dataDir, then ~/.saleshub/data.
func ResolveDir(explicit string, cfg *GlobalConfig) (string, error) {
	if d := strings.TrimSpace(explicit); d != "" {
		return d, nil
	}
	if cwd, err := os.Getwd(); err == nil {
		if found, ok := DiscoverDir(cwd); ok {
			return found, nil
		}
	}
	if cfg != nil && strings.TrimSpace(cfg.DataDir) != "" {
		return expandHome(cfg.DataDir)
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}

func expandHome(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func buildDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	q.Add("_pragma", "foreign_keys(ON)")
	q.Add("_pragma", "busy_timeout(5000)")
	return "file:" + path + "?" + q.Encode()
}

// Open opens (creating if needed) the database and applies pending migrations.
func (s Store) Open(ctx context.Context) (*DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}
	path := s.sqlitePath()
	db, err := sql.Open("sqlite", buildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s: %w", path, err)
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	logging.FromContext(ctx).Debug("store opened", "path", path)
	return &DB{sql: db, path: path}, nil
}

func (db *DB) Path() string { return db.path }

func (db *DB) Close() error {
	if db == nil || db.sql == nil {
		return nil
	}
	return db.sql.Close()
}

func (db *DB) Departments() *DepartmentRepo { return &DepartmentRepo{db: db.sql} }

func (db *DB) Sellers() *SellerRepo { return &SellerRepo{db: db.sql} }
