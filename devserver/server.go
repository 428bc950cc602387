// Package devserver is an in-memory implementation of the remote collection
// store's HTTP API. It exists for local development and integration tests;
// nothing here persists across restarts.
package devserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

// Server holds the in-memory collection store and its HTTP handler.
type Server struct {
	log zerolog.Logger

	mu          sync.Mutex
	collections map[string]*types.Collection
	cards       map[string]*types.Card // card id -> card
	byCol       map[string][]string    // collection id -> card ids in order
}

// New returns an empty dev server.
func New(log zerolog.Logger) *Server {
	return &Server{
		log:         log,
		collections: make(map[string]*types.Collection),
		cards:       make(map[string]*types.Card),
		byCol:       make(map[string][]string),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/collections", s.createCollection).Methods(http.MethodPost)
	r.HandleFunc("/collections/{collectionId}", s.getCollection).Methods(http.MethodGet)
	r.HandleFunc("/collections/{collectionId}", s.patchCollection).Methods(http.MethodPatch)
	r.HandleFunc("/cards/{cardId}", s.patchCard).Methods(http.MethodPatch)
	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Seed creates a collection with twelve blank cards and returns its id.
// Test convenience; the HTTP POST route does the same.
func (s *Server) Seed(recipient, sender string) string {
	bundle := s.newCollection(recipient, sender)
	return bundle.Collection.ID
}

func (s *Server) newCollection(recipient, sender string) types.CollectionBundle {
	now := time.Now().UTC()
	col := &types.Collection{
		ID:            uuid.NewString(),
		RecipientName: recipient,
		SenderName:    sender,
		Status:        types.CollectionPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.collections[col.ID] = col
	ids := make([]string, 0, types.CardsPerCollection)
	cards := make([]types.Card, 0, types.CardsPerCollection)
	for order := 1; order <= types.CardsPerCollection; order++ {
		c := &types.Card{
			ID:           uuid.NewString(),
			CollectionID: col.ID,
			Order:        order,
			Status:       types.CardUnopened,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.cards[c.ID] = c
		ids = append(ids, c.ID)
		cards = append(cards, *c)
	}
	s.byCol[col.ID] = ids
	out := *col
	s.mu.Unlock()

	return types.CollectionBundle{Collection: out, Cards: cards}
}

func (s *Server) createCollection(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	bundle := s.newCollection(req.RecipientName, req.SenderName)
	writeJSON(w, http.StatusCreated, bundle)
}

func (s *Server) getCollection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["collectionId"]

	s.mu.Lock()
	col, ok := s.collections[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "collection not found")
		return
	}
	bundle := types.CollectionBundle{Collection: *col}
	for _, cardID := range s.byCol[id] {
		bundle.Cards = append(bundle.Cards, *s.cards[cardID])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, bundle)
}

func (s *Server) patchCollection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["collectionId"]
	var req types.UpdateCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	s.mu.Lock()
	col, ok := s.collections[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "collection not found")
		return
	}
	types.CollectionPatch{
		RecipientName:  req.RecipientName,
		SenderName:     req.SenderName,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		IntroMessage:   req.IntroMessage,
		YoutubeVideoID: req.YoutubeVideoID,
	}.Apply(col)
	col.UpdatedAt = time.Now().UTC()
	out := *col
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, types.CollectionResponse{Collection: out})
}

func (s *Server) patchCard(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["cardId"]
	var req types.UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if utf8.RuneCountInString(req.MessageText) > types.MaxMessageLength {
		writeError(w, http.StatusBadRequest, "messageText too long")
		return
	}

	s.mu.Lock()
	card, ok := s.cards[id]
	if !ok {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "card not found")
		return
	}
	card.Title = req.Title
	card.MessageText = req.MessageText
	card.ImageURL = req.ImageURL
	card.YoutubeURL = req.YoutubeURL
	card.UpdatedAt = time.Now().UTC()
	out := *card
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, types.CardResponse{Card: out})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
