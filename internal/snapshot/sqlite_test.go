package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Alissonroosa/paperbloom-digital-sub001/internal/types"
)

func testRecord(collectionID string) Record {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cards := make([]types.Card, 0, types.CardsPerCollection)
	for i := 1; i <= types.CardsPerCollection; i++ {
		cards = append(cards, types.Card{
			ID:           collectionID + "-card",
			CollectionID: collectionID,
			Order:        i,
			Title:        "title",
			MessageText:  "message",
			Status:       types.CardUnopened,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	return Record{
		Collection: types.Collection{
			ID:            collectionID,
			RecipientName: "Maria",
			SenderName:    "João",
			Status:        types.CollectionPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		Cards:        cards,
		CardCursor:   7,
		MomentCursor: 1,
		SavedAt:      now,
	}
}

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := openTestStore(t)

	rec := testRecord("col1")
	require.NoError(t, st.Save(ctx, "col1", rec))

	got, err := st.Load(ctx, "col1")
	require.NoError(t, err)
	require.Equal(t, rec, *got)
}

func TestSQLiteUpsertReplaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := openTestStore(t)

	rec := testRecord("col1")
	require.NoError(t, st.Save(ctx, "col1", rec))

	rec.CardCursor = 2
	rec.Collection.RecipientName = "Clara"
	require.NoError(t, st.Save(ctx, "col1", rec))

	got, err := st.Load(ctx, "col1")
	require.NoError(t, err)
	require.Equal(t, 2, got.CardCursor)
	require.Equal(t, "Clara", got.Collection.RecipientName)
}

func TestSQLiteLoadMissing(t *testing.T) {
	t.Parallel()
	st := openTestStore(t)

	_, err := st.Load(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSQLiteDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := openTestStore(t)

	require.NoError(t, st.Save(ctx, "col1", testRecord("col1")))
	require.NoError(t, st.Delete(ctx, "col1"))
	_, err := st.Load(ctx, "col1")
	require.ErrorIs(t, err, ErrNoSnapshot)

	// Deleting a missing snapshot is not an error.
	require.NoError(t, st.Delete(ctx, "col1"))
}

func TestSQLiteCorruptPayload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.db.ExecContext(ctx,
		`INSERT INTO snapshots (collection_id, payload, saved_at) VALUES (?, ?, ?)`,
		"col1", []byte("{broken"), "2025-06-01T12:00:00Z")
	require.NoError(t, err)

	_, err = st.Load(ctx, "col1")
	require.True(t, IsCorrupt(err), "want CorruptError, got %v", err)

	var ce *CorruptError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, "col1", ce.CollectionID)
}
