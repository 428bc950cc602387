// Package snapshot persists the full editing-session state to durable local
// storage so a session survives reload without waiting for the remote store.
package snapshot

import (
	"time"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// Record is the full session snapshot written per collection id. Timestamps
// serialize as RFC 3339 strings and restore to time values on read.
type Record struct {
	Collection   types.Collection `json:"collection"`
	Cards        []types.Card     `json:"cards"`
	CardCursor   int              `json:"cardCursor"`
	MomentCursor int              `json:"momentCursor"`
	SavedAt      time.Time        `json:"savedAt"`
}
