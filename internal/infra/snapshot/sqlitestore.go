package snapshot

import (
	"context"
	"database/sql"
	"time"

	"ecocollect/internal/infra"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	blob       BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteStore keeps snapshots in a single key/value table. It is the
// durable alternative to the file store when the state should live in one
// portable database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to open sqlite store", err)
	}
	// The store serializes writes itself; sqlite handles one writer at a
	// time anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createSnapshotsTable); err != nil {
		_ = db.Close()
		return nil, infra.WrapRepoErr("failed to init sqlite store", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM snapshots WHERE key = ?`, key).Scan(&blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, infra.WrapRepoErr("no snapshot for key "+key, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load snapshot "+key, err)
	}
	return blob, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, blob, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		key, blob, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return infra.WrapRepoErr("failed to save snapshot "+key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return infra.WrapRepoErr("failed to delete snapshot "+key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
