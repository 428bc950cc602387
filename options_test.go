package paperbloom

import (
	"context"
	"testing"
	"time"
)

func TestOpenRejectsBadOptions(t *testing.T) {
	t.Parallel()

	bad := []struct {
		name string
		opt  Option
	}{
		{"empty base URL", WithBaseURL("")},
		{"zero timeout", WithHTTPTimeout(0)},
		{"nil client", WithHTTPClient(nil)},
		{"zero debounce", WithDebounceWindow(0)},
		{"nil store", WithSnapshotStore(nil)},
		{"nil clock", WithClock(nil)},
	}
	for _, tc := range bad {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Open(context.Background(), "col1", tc.opt); err == nil {
				t.Fatal("want option error")
			}
		})
	}
}

func TestWithClockStampsMutations(t *testing.T) {
	t.Parallel()
	ts, id := newRemote(t)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	s := openSession(t, ts, id, NewMemorySnapshotStore(), WithClock(func() time.Time { return fixed }))
	cardID := s.Cards()[0].ID

	title := "stamped"
	s.MutateCard(cardID, CardPatch{Title: &title})
	if got, _ := s.Card(cardID); !got.UpdatedAt.Equal(fixed) {
		t.Fatalf("UpdatedAt = %s, want %s", got.UpdatedAt, fixed)
	}
}
