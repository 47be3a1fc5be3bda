package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// SQLiteFile is the database file created under the base path by the sqlite
// backend.
const SQLiteFile = "tripcraft.sqlite"

const blobSchema = `CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

const upsertBlob = `INSERT INTO blobs (key, value, updated_at)
VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type sqlitePersistence struct {
	db       *sql.DB
	basePath string
	path     string
	logger   *zap.Logger
}

func openSQLite(basePath string, logger *zap.Logger) (*sqlitePersistence, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	path := filepath.Join(basePath, SQLiteFile)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection serializes writers inside this process.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		blobSchema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: init sqlite: %w", err)
		}
	}
	return &sqlitePersistence{db: db, basePath: basePath, path: path, logger: logger}, nil
}

func (p *sqlitePersistence) Load(ctx context.Context) (*itinerary.Itinerary, error) {
	var val []byte
	err := p.db.QueryRowContext(ctx, "SELECT value FROM blobs WHERE key = ?", Key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	it, err := itinerary.Unmarshal(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return it, nil
}

func (p *sqlitePersistence) Save(ctx context.Context, it *itinerary.Itinerary) error {
	data, err := itinerary.Marshal(it)
	if err != nil {
		return fmt.Errorf("store: encode itinerary: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, upsertBlob, Key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	return nil
}

// Watch reports writes to the database or its write-ahead log.
func (p *sqlitePersistence) Watch(ctx context.Context) (<-chan Event, error) {
	return watchFiles(ctx, p.logger, p.basePath, p.path, p.path+"-wal")
}

func (p *sqlitePersistence) Close() error {
	return p.db.Close()
}
