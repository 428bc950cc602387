package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	collection_id TEXT PRIMARY KEY,
	payload       BLOB NOT NULL,
	saved_at      TEXT NOT NULL
);`

// SQLiteStore keeps one snapshot row per collection id in an embedded SQLite
// database. It is the default durable store.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the snapshot database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	// A single writer at a time keeps SQLite happy under the debounced
	// write pattern.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshot schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, collectionID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE collection_id = ?`, collectionID)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, &CorruptError{CollectionID: collectionID, Err: err}
	}
	return &rec, nil
}

// Save implements Store with an upsert keyed by collection id.
func (s *SQLiteStore) Save(ctx context.Context, collectionID string, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (collection_id, payload, saved_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(collection_id) DO UPDATE SET
			payload = excluded.payload,
			saved_at = excluded.saved_at`,
		collectionID, payload, rec.SavedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, collectionID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE collection_id = ?`, collectionID); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }
