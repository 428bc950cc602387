package devserver

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/api"
	apierrors "github.com/Alissonroosa/paperbloom-digital-sub001/internal/errors"
	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(zerolog.Nop())
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestSeedCreatesTwelveOrderedCards(t *testing.T) {
	t.Parallel()
	s, ts := newTestServer(t)
	id := s.Seed("Maria", "João")

	bundle, err := api.LoadCollection(context.Background(), ts.Client(), ts.URL, id)
	if err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	if bundle.Collection.RecipientName != "Maria" || bundle.Collection.SenderName != "João" {
		t.Fatalf("seed names not stored: %+v", bundle.Collection)
	}
	if len(bundle.Cards) != types.CardsPerCollection {
		t.Fatalf("seeded %d cards, want %d", len(bundle.Cards), types.CardsPerCollection)
	}
	for i, c := range bundle.Cards {
		if c.Order != i+1 {
			t.Fatalf("card %d has order %d", i, c.Order)
		}
		if c.CollectionID != id {
			t.Fatalf("card %d belongs to %q", i, c.CollectionID)
		}
	}
}

func TestCreateCollectionEndpoint(t *testing.T) {
	t.Parallel()
	_, ts := newTestServer(t)

	bundle, err := api.CreateCollection(context.Background(), ts.Client(), ts.URL,
		types.CreateCollectionRequest{RecipientName: "Ana", SenderName: "Rui"})
	if err != nil {
		t.Fatalf("CreateCollection: %v", err)
	}
	if bundle.Collection.ID == "" || len(bundle.Cards) != types.CardsPerCollection {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
	if bundle.Collection.Status != types.CollectionPending {
		t.Fatalf("new collection status = %q", bundle.Collection.Status)
	}
}

func TestPatchCardRoundTrip(t *testing.T) {
	t.Parallel()
	s, ts := newTestServer(t)
	id := s.Seed("Maria", "João")

	bundle, err := api.LoadCollection(context.Background(), ts.Client(), ts.URL, id)
	if err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}
	cardID := bundle.Cards[0].ID

	img := "https://img.example/1.jpg"
	got, err := api.PatchCard(context.Background(), ts.Client(), ts.URL, cardID, types.UpdateCardRequest{
		Title:       "Our first trip",
		MessageText: "Remember the rain in Porto?",
		ImageURL:    &img,
	})
	if err != nil {
		t.Fatalf("PatchCard: %v", err)
	}
	if got.Title != "Our first trip" || got.ImageURL == nil || *got.ImageURL != img {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not stamped")
	}
}

func TestPatchCardRejectsOversizedMessage(t *testing.T) {
	t.Parallel()
	s, ts := newTestServer(t)
	id := s.Seed("Maria", "João")

	bundle, err := api.LoadCollection(context.Background(), ts.Client(), ts.URL, id)
	if err != nil {
		t.Fatalf("LoadCollection: %v", err)
	}

	_, err = api.PatchCard(context.Background(), ts.Client(), ts.URL, bundle.Cards[0].ID, types.UpdateCardRequest{
		MessageText: strings.Repeat("x", types.MaxMessageLength+1),
	})
	if err == nil || !apierrors.IsIrrecoverable(err) {
		t.Fatalf("want irrecoverable 400, got %v", err)
	}
}

func TestPatchUnknownCardIs404(t *testing.T) {
	t.Parallel()
	_, ts := newTestServer(t)

	_, err := api.PatchCard(context.Background(), ts.Client(), ts.URL, "nope", types.UpdateCardRequest{Title: "t"})
	if err == nil || !apierrors.IsIrrecoverable(err) {
		t.Fatalf("want irrecoverable 404, got %v", err)
	}
}

func TestPatchCollectionContactFields(t *testing.T) {
	t.Parallel()
	s, ts := newTestServer(t)
	id := s.Seed("Maria", "João")

	name, email, phone := "João Silva", "joao@example.com", "+351912345678"
	got, err := api.PatchCollection(context.Background(), ts.Client(), ts.URL, id, types.UpdateCollectionRequest{
		ContactName:  &name,
		ContactEmail: &email,
		ContactPhone: &phone,
	})
	if err != nil {
		t.Fatalf("PatchCollection: %v", err)
	}
	if got.ContactName != name || got.ContactEmail != email || got.ContactPhone != phone {
		t.Fatalf("contact fields not applied: %+v", got)
	}
	// Untouched fields keep their seeded values.
	if got.RecipientName != "Maria" {
		t.Fatalf("recipientName clobbered: %q", got.RecipientName)
	}
}
