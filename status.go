package paperbloom

import (
	"time"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/completion"
)

// SessionStatus is a point-in-time view of the session's derived and
// housekeeping state.
type SessionStatus struct {
	Overall      CompletionStatus   `json:"overall"`
	Moments      []CompletionStatus `json:"moments"`
	CanFinalize  bool               `json:"canFinalize"`
	Dirty        bool               `json:"dirty"`
	Saving       bool               `json:"saving"`
	LastSavedAt  time.Time          `json:"lastSavedAt"`
	CardCursor   int                `json:"cardCursor"`
	MomentCursor int                `json:"momentCursor"`
}

// Status recomputes the derived view from the current entity state.
func (s *Session) Status() SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SessionStatus{
		Overall:      completion.Overall(s.cards),
		Moments:      make([]CompletionStatus, completion.MomentCount),
		CanFinalize:  completion.CanFinalize(s.collection, s.cards),
		Dirty:        s.dirty,
		Saving:       s.inflight > 0,
		LastSavedAt:  s.lastSavedAt,
		CardCursor:   s.cardCursor.Pos(),
		MomentCursor: s.momentCursor.Pos(),
	}
	for i := 0; i < completion.MomentCount; i++ {
		st.Moments[i] = completion.ForMoment(s.cards, i)
	}
	return st
}

// CanFinalize reports the single checkout gate: collection present and all
// twelve cards complete.
func (s *Session) CanFinalize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return completion.CanFinalize(s.collection, s.cards)
}

// Saving reports whether any remote save is in flight.
func (s *Session) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Dirty reports whether local changes have not yet been committed to the
// snapshot.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastSavedAt returns when the snapshot or a remote save last succeeded.
func (s *Session) LastSavedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSavedAt
}

// CardSyncState returns the tagged reconciliation state of a card. A card
// never mutated nor saved reports SyncClean.
func (s *Session) CardSyncState(cardID string) SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncStates[cardID]
}

// CollectionSyncState returns the tagged reconciliation state of the
// collection.
func (s *Session) CollectionSyncState() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncStates[s.collectionID]
}
