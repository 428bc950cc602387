package paperbloom

import (
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// MutateCard applies the patch to the matching card immediately: no I/O, last
// write wins per field, UpdatedAt restamped, session marked dirty, snapshot
// write (re)scheduled. An unknown card id is a silent no-op; late UI events
// for a card that left the view are routine, not errors.
func (s *Session) MutateCard(cardID string, patch CardPatch) {
	s.mu.Lock()
	i := s.cardIndex(cardID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	patch.Apply(&s.cards[i])
	s.cards[i].UpdatedAt = s.now()
	s.dirty = true
	s.mutSeq++
	s.syncStates[cardID] = SyncState{Kind: SyncDirty}
	s.mu.Unlock()

	s.writer.Schedule()
}

// MutateCollection applies the patch to the collection. Same contract as
// MutateCard; a no-op before the collection is loaded.
func (s *Session) MutateCollection(patch CollectionPatch) {
	s.mu.Lock()
	if s.collection == nil {
		s.mu.Unlock()
		return
	}
	patch.Apply(s.collection)
	s.collection.UpdatedAt = s.now()
	s.dirty = true
	s.mutSeq++
	s.syncStates[s.collectionID] = SyncState{Kind: SyncDirty}
	s.mu.Unlock()

	s.writer.Schedule()
}

// SetCards bulk-replaces the card set. Load-time only; it does not mark the
// session dirty.
func (s *Session) SetCards(cards []Card) {
	s.mu.Lock()
	s.cards = append([]types.Card(nil), cards...)
	s.mu.Unlock()
}

// SetCollection replaces the in-memory collection. Load-time only.
func (s *Session) SetCollection(col Collection) {
	s.mu.Lock()
	s.collection = &col
	s.mu.Unlock()
}
