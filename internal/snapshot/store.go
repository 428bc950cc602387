package snapshot

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by Load when no snapshot exists for the
// collection id.
var ErrNoSnapshot = errors.New("no snapshot for collection")

// CorruptError reports a stored snapshot that could not be decoded. Callers
// treat it as "no snapshot" after logging; it is never fatal.
type CorruptError struct {
	CollectionID string
	Err          error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("snapshot for collection %s is corrupt: %v", e.CollectionID, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// IsCorrupt reports whether err indicates an undecodable snapshot.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}

// Store is durable local storage holding at most one Record per collection id.
type Store interface {
	// Load returns the snapshot for collectionID, ErrNoSnapshot when absent,
	// or a *CorruptError when present but undecodable.
	Load(ctx context.Context, collectionID string) (*Record, error)

	// Save writes rec for collectionID, replacing any previous snapshot.
	Save(ctx context.Context, collectionID string, rec Record) error

	// Delete removes the snapshot for collectionID. Deleting a missing
	// snapshot is not an error.
	Delete(ctx context.Context, collectionID string) error

	// Close releases underlying resources.
	Close() error
}
