package paperbloom

import (
	"context"
	"fmt"
	"time"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// Finalize checks the checkout gate, pushes the buyer contact info to the
// remote store, and on success tears down the local draft snapshot. It never
// silently succeeds: a failed gate returns ErrNotFinalizable, invalid contact
// info returns the validation error, and a failed remote write leaves the
// snapshot in place so nothing is lost.
func (s *Session) Finalize(ctx context.Context, contact Contact) error {
	if !s.CanFinalize() {
		return ErrNotFinalizable
	}
	if err := types.ValidateContact(contact); err != nil {
		return fmt.Errorf("%w: %w", ErrNotFinalizable, err)
	}

	s.MutateCollection(CollectionPatch{
		ContactName:  &contact.Name,
		ContactEmail: &contact.Email,
		ContactPhone: &contact.Phone,
	})
	if _, err := s.SaveCollection(ctx); err != nil {
		return err
	}

	return s.clearSnapshot(ctx)
}

// Discard drops the local draft snapshot and resets the session to its
// unloaded state. The remote store is untouched.
func (s *Session) Discard(ctx context.Context) error {
	if err := s.clearSnapshot(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.collection = nil
	s.cards = nil
	s.cardCursor.Restore(0)
	s.momentCursor.Restore(0)
	s.syncStates = make(map[string]SyncState)
	s.mu.Unlock()
	return nil
}

// clearSnapshot cancels pending debounced work and removes the stored
// snapshot, resetting the housekeeping flags.
func (s *Session) clearSnapshot(ctx context.Context) error {
	s.writer.Cancel()
	if err := s.store.Delete(ctx, s.collectionID); err != nil {
		return err
	}
	s.mu.Lock()
	s.dirty = false
	s.lastSavedAt = time.Time{}
	s.mu.Unlock()
	return nil
}
