package paperbloom

import (
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/completion"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// Re-exported domain types so callers only import this package.

type (
	Collection       = types.Collection
	Card             = types.Card
	CardPatch        = types.CardPatch
	CollectionPatch  = types.CollectionPatch
	Contact          = types.Contact
	CollectionStatus = types.CollectionStatus
	CardStatus       = types.CardStatus
	ValidationError  = types.ValidationError

	Moment           = completion.Moment
	CompletionStatus = completion.Status
)

const (
	// CardsPerCollection is the fixed number of cards every collection owns.
	CardsPerCollection = types.CardsPerCollection

	// MaxMessageLength is the hard limit on a card's message text.
	MaxMessageLength = types.MaxMessageLength

	// MomentCount is the number of thematic moments.
	MomentCount = completion.MomentCount
)

// Moments returns the fixed display partition of the twelve card positions.
func Moments() []Moment { return completion.Moments() }

// IsComplete reports whether a card counts toward checkout eligibility.
func IsComplete(c Card) bool { return completion.IsComplete(c) }

// SyncKind tags an entity's reconciliation state with the remote store.
type SyncKind int

const (
	// SyncClean means the in-memory entity matches the last canonical copy.
	SyncClean SyncKind = iota
	// SyncDirty means the entity has local changes not yet pushed.
	SyncDirty
	// SyncSaving means a remote write for the entity is in flight.
	SyncSaving
	// SyncFailed means the last remote write failed; Err carries the cause.
	SyncFailed
)

func (k SyncKind) String() string {
	switch k {
	case SyncClean:
		return "clean"
	case SyncDirty:
		return "dirty"
	case SyncSaving:
		return "saving"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SyncState is the tagged per-entity reconciliation state. Err is set only
// when Kind is SyncFailed.
type SyncState struct {
	Kind SyncKind
	Err  error
}
