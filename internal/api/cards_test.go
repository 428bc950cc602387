package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/Alissonroosa/paperbloom-digital-sub001/internal/errors"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

func TestPatchCard_Success(t *testing.T) {
	t.Parallel()
	want := types.Card{ID: "card-1", CollectionID: "col1", Order: 1, Title: "t", MessageText: "m"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		var req types.UpdateCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Title != "t" || req.MessageText != "m" {
			t.Errorf("request = %+v, want full field set", req)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(types.CardResponse{Card: want})
	}))
	defer srv.Close()

	got, err := PatchCard(context.Background(), srv.Client(), srv.URL, "card-1",
		types.UpdateCardRequest{Title: "t", MessageText: "m"})
	if err != nil || got == nil || got.ID != "card-1" {
		t.Fatalf("PatchCard unexpected: got=%+v err=%v", got, err)
	}
}

func TestPatchCard_ServerErrorIsRecoverable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := PatchCard(context.Background(), srv.Client(), srv.URL, "card-1", types.UpdateCardRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *apierrors.ClassifiedError
	if !errors.As(err, &ce) || ce.Category != apierrors.Recoverable || ce.StatusCode != 500 {
		t.Fatalf("unexpected classification: %v", err)
	}
}

func TestPatchCard_ClientErrorIsIrrecoverable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := PatchCard(context.Background(), srv.Client(), srv.URL, "card-1", types.UpdateCardRequest{})
	if !apierrors.IsIrrecoverable(err) {
		t.Fatalf("want irrecoverable error, got %v", err)
	}
}

func TestPatchCard_EmptyID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := PatchCard(context.Background(), srv.Client(), srv.URL, " ", types.UpdateCardRequest{}); err == nil {
		t.Fatal("expected validation error for blank card id")
	}
}
