package paperbloom

import (
	"context"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/snapshot"
)

// SnapshotStore is the durable local storage holding one draft snapshot per
// collection id.
type SnapshotStore = snapshot.Store

// OpenSnapshotStore opens (creating if needed) a SQLite-backed snapshot store
// at path. Sessions opened without WithSnapshotStore manage their own store
// under the per-user data directory; share one store across sessions by
// opening it here and passing it in.
func OpenSnapshotStore(ctx context.Context, path string) (SnapshotStore, error) {
	return snapshot.OpenSQLite(ctx, path)
}

// NewMemorySnapshotStore returns a snapshot store that lives only in memory.
// Drafts do not survive a restart; intended for tests and throwaway sessions.
func NewMemorySnapshotStore() SnapshotStore {
	return snapshot.NewMemStore()
}
