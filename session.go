// Package paperbloom implements the editing-session engine behind the card
// collection editor: in-memory entities mutated optimistically, a debounced
// local snapshot for reload recovery, reconciliation with the remote
// collection store, derived completion values, and the editor's navigation
// cursors.
package paperbloom

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/api"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/completion"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/config"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/nav"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/savequeue"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/snapshot"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/statepath"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// Session is one editing session for one collection. All entity mutation is
// synchronous; snapshot writes and remote saves are asynchronous and never
// block further local mutation.
//
// A Session is safe for concurrent use. The durable snapshot for a collection
// id is assumed to be owned by a single active session at a time; nothing
// here coordinates two sessions editing the same collection.
type Session struct {
	collectionID string
	baseURL      string
	http         *http.Client
	store        snapshot.Store
	ownStore     bool
	window       time.Duration
	sequenced    bool
	exec         *savequeue.Executor
	writer       *snapshot.Writer
	log          zerolog.Logger
	now          func() time.Time

	mu           sync.Mutex
	collection   *types.Collection
	cards        []types.Card
	cardCursor   *nav.Cursor
	momentCursor *nav.Cursor
	syncStates   map[string]SyncState
	dirty        bool
	mutSeq       uint64
	capturedSeq  uint64
	inflight     int
	lastSavedAt  time.Time

	closedOnce uint32
}

// Open constructs the session for collectionID and populates it, preferring a
// local snapshot over the remote store: when a parseable snapshot exists no
// remote fetch happens at all. Without one, the collection is fetched cold
// and a remote failure is fatal (a *LoadError).
func Open(ctx context.Context, collectionID string, opts ...Option) (*Session, error) {
	if err := types.ValidateIDPresent(collectionID, "collectionId"); err != nil {
		return nil, err
	}

	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	s := &Session{
		collectionID: collectionID,
		baseURL:      cfg.BaseURL,
		http:         &http.Client{Timeout: cfg.HTTPTimeout},
		window:       cfg.DebounceWindow,
		log:          log.With().Str("component", "session").Str("collection_id", collectionID).Logger(),
		now:          time.Now,
		cardCursor:   nav.New(types.CardsPerCollection),
		momentCursor: nav.New(completion.MomentCount),
		syncStates:   make(map[string]SyncState),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.store == nil {
		dbPath, err := statepath.DBPath()
		if err != nil {
			return nil, err
		}
		st, err := snapshot.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, err
		}
		s.store = st
		s.ownStore = true
	}
	if s.sequenced {
		qcfg, err := savequeue.LoadConfig()
		if err != nil {
			s.teardown()
			return nil, err
		}
		// Ordering only: the engine never retries a failed save.
		qcfg.MaxAttempts = 1
		qcfg.ErrorHandler = func(err error) {
			s.log.Warn().Err(err).Msg("sequenced save job failed")
		}
		s.exec = savequeue.NewExecutor(qcfg)
	}

	s.writer = snapshot.NewWriter(snapshot.WriterConfig{
		Store:     s.store,
		Key:       collectionID,
		Window:    s.window,
		Capture:   s.captureSnapshot,
		OnWritten: s.snapshotWritten,
		OnError: func(err error) {
			snapshotWriteFailuresTotal.Inc()
			s.log.Warn().Err(err).Msg("snapshot write failed")
		},
	})

	if err := s.populate(ctx); err != nil {
		s.teardown()
		return nil, err
	}
	return s, nil
}

// populate fills the session from the snapshot when one exists, otherwise
// from the remote store.
func (s *Session) populate(ctx context.Context) error {
	rec, err := s.store.Load(ctx, s.collectionID)
	switch {
	case err == nil:
		s.restore(rec)
		s.log.Debug().Time("saved_at", rec.SavedAt).Msg("session restored from snapshot")
		return nil
	case errors.Is(err, snapshot.ErrNoSnapshot):
		// fall through to the cold load
	case snapshot.IsCorrupt(err):
		s.log.Warn().Err(err).Msg("snapshot corrupt, falling back to remote load")
	default:
		s.log.Warn().Err(err).Msg("snapshot load failed, falling back to remote load")
	}

	bundle, err := api.LoadCollection(ctx, s.http, s.baseURL, s.collectionID)
	if err != nil {
		return &LoadError{CollectionID: s.collectionID, Err: err}
	}

	s.mu.Lock()
	col := bundle.Collection
	s.collection = &col
	s.cards = append([]types.Card(nil), bundle.Cards...)
	s.mu.Unlock()
	return nil
}

// restore installs a recovered snapshot as the session's initial state.
func (s *Session) restore(rec *snapshot.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := rec.Collection
	s.collection = &col
	s.cards = append([]types.Card(nil), rec.Cards...)
	s.cardCursor.Restore(rec.CardCursor)
	s.momentCursor.Restore(rec.MomentCursor)
	s.lastSavedAt = rec.SavedAt
}

// captureSnapshot builds the record the writer persists when its timer fires.
func (s *Session) captureSnapshot() (snapshot.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collection == nil {
		return snapshot.Record{}, false
	}
	s.capturedSeq = s.mutSeq
	return snapshot.Record{
		Collection:   *s.collection,
		Cards:        append([]types.Card(nil), s.cards...),
		CardCursor:   s.cardCursor.Pos(),
		MomentCursor: s.momentCursor.Pos(),
		SavedAt:      s.now(),
	}, true
}

func (s *Session) snapshotWritten(at time.Time) {
	snapshotWritesTotal.Inc()
	s.mu.Lock()
	// A mutation that arrived after the record was captured is not in the
	// committed snapshot; the session stays dirty until the re-armed write.
	if s.mutSeq == s.capturedSeq {
		s.dirty = false
	}
	s.lastSavedAt = at
	s.mu.Unlock()
}

// Flush cancels the pending debounce timer, if any, and writes the snapshot
// immediately. Useful before shutdown and in tests.
func (s *Session) Flush(ctx context.Context) error {
	if err := s.writer.Flush(ctx); err != nil {
		snapshotWriteFailuresTotal.Inc()
		return err
	}
	return nil
}

// Close stops the debounce writer and the save queue. It does not flush;
// call Flush first when the latest state must be durable. Safe to call more
// than once.
func (s *Session) Close() error {
	if !atomic.CompareAndSwapUint32(&s.closedOnce, 0, 1) {
		return nil
	}
	s.teardown()
	return nil
}

func (s *Session) teardown() {
	if s.writer != nil {
		s.writer.Close()
	}
	if s.exec != nil {
		s.exec.Stop()
	}
	if s.ownStore && s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn().Err(err).Msg("closing snapshot store failed")
		}
	}
}

// CollectionID returns the id this session edits.
func (s *Session) CollectionID() string { return s.collectionID }

// Collection returns a copy of the in-memory collection, or nil before load.
func (s *Session) Collection() *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collection == nil {
		return nil
	}
	col := *s.collection
	return &col
}

// Cards returns a copy of the in-memory cards in order.
func (s *Session) Cards() []Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Card(nil), s.cards...)
}

// Card returns a copy of the card with the given id.
func (s *Session) Card(cardID string) (Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cards {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// cardIndex returns the index of cardID in s.cards, or -1. Caller holds mu.
func (s *Session) cardIndex(cardID string) int {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			return i
		}
	}
	return -1
}
