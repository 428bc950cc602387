package paperbloom

import (
	"context"
	"errors"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/api"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/savequeue"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// SaveCard pushes the card to the remote store and merges back the canonical
// copy. The request carries the current in-memory value of every editable
// field, captured when the save actually executes, so a slower earlier save
// can never push a staler field set than a later one built after more edits.
//
// On failure the optimistic in-memory value is retained, the card stays
// dirty, and the *SaveError is returned; the engine performs no retries.
// Saves of different cards run concurrently. Two overlapping saves of the
// same card resolve last-response-wins unless the session was opened with
// WithSequencedSaves.
func (s *Session) SaveCard(ctx context.Context, cardID string) (*Card, error) {
	s.mu.Lock()
	i := s.cardIndex(cardID)
	if i < 0 {
		s.mu.Unlock()
		return nil, ErrUnknownCard
	}
	s.syncStates[cardID] = SyncState{Kind: SyncSaving}
	s.inflight++
	s.mu.Unlock()

	savesTotal.WithLabelValues("card").Inc()

	run := func(runCtx context.Context) (*types.Card, error) {
		s.mu.Lock()
		j := s.cardIndex(cardID)
		if j < 0 {
			s.mu.Unlock()
			return nil, ErrUnknownCard
		}
		c := s.cards[j]
		req := types.UpdateCardRequest{
			Title:       c.Title,
			MessageText: c.MessageText,
			ImageURL:    c.ImageURL,
			YoutubeURL:  c.YoutubeURL,
		}
		s.mu.Unlock()

		return api.PatchCard(runCtx, s.http, s.baseURL, cardID, req)
	}

	canonical, err := dispatch(ctx, s, cardID, run)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.syncStates[cardID] = SyncState{Kind: SyncFailed, Err: err}
		s.mu.Unlock()
		saveFailuresTotal.WithLabelValues("card").Inc()
		s.log.Warn().Err(err).Str("card_id", cardID).Msg("card save failed")
		return nil, &SaveError{EntityID: cardID, Err: err}
	}
	// Whichever response arrives last wins; the canonical copy replaces the
	// optimistic one wholesale.
	if j := s.cardIndex(cardID); j >= 0 {
		s.cards[j] = *canonical
	}
	s.syncStates[cardID] = SyncState{Kind: SyncClean}
	s.lastSavedAt = s.now()
	s.mu.Unlock()

	s.writer.Schedule()
	out := *canonical
	return &out, nil
}

// SaveCollection pushes the collection's editable fields and merges back the
// canonical copy. Same contract as SaveCard, at collection granularity.
func (s *Session) SaveCollection(ctx context.Context) (*Collection, error) {
	s.mu.Lock()
	if s.collection == nil {
		s.mu.Unlock()
		return nil, ErrNoCollection
	}
	s.syncStates[s.collectionID] = SyncState{Kind: SyncSaving}
	s.inflight++
	s.mu.Unlock()

	savesTotal.WithLabelValues("collection").Inc()

	run := func(runCtx context.Context) (*types.Collection, error) {
		s.mu.Lock()
		col := *s.collection
		s.mu.Unlock()

		req := types.UpdateCollectionRequest{
			RecipientName:  &col.RecipientName,
			SenderName:     &col.SenderName,
			ContactName:    &col.ContactName,
			ContactEmail:   &col.ContactEmail,
			ContactPhone:   &col.ContactPhone,
			IntroMessage:   &col.IntroMessage,
			YoutubeVideoID: &col.YoutubeVideoID,
		}
		return api.PatchCollection(runCtx, s.http, s.baseURL, s.collectionID, req)
	}

	canonical, err := dispatch(ctx, s, s.collectionID, run)

	s.mu.Lock()
	s.inflight--
	if err != nil {
		s.syncStates[s.collectionID] = SyncState{Kind: SyncFailed, Err: err}
		s.mu.Unlock()
		saveFailuresTotal.WithLabelValues("collection").Inc()
		s.log.Warn().Err(err).Msg("collection save failed")
		return nil, &SaveError{EntityID: s.collectionID, Err: err}
	}
	col := *canonical
	s.collection = &col
	s.syncStates[s.collectionID] = SyncState{Kind: SyncClean}
	s.lastSavedAt = s.now()
	s.mu.Unlock()

	s.writer.Schedule()
	out := *canonical
	return &out, nil
}

// dispatch runs the save either inline (default, concurrent saves) or through
// the per-entity FIFO queue when sequenced saves are enabled.
func dispatch[T any](ctx context.Context, s *Session, key string, run func(context.Context) (*T, error)) (*T, error) {
	if s.exec == nil {
		return run(ctx)
	}

	var (
		out  *T
		err  error
		done = make(chan struct{})
	)
	job := savequeue.JobFunc(func(jobCtx context.Context) error {
		out, err = run(jobCtx)
		close(done)
		// The caller gets the error; the queue only orders work.
		return nil
	})
	if submitErr := s.exec.Submit(ctx, key, job); submitErr != nil {
		if errors.Is(submitErr, savequeue.ErrQueueFull) {
			return nil, ErrBackPressure
		}
		return nil, submitErr
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
		return out, err
	}
}
