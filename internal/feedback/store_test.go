package feedback

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corrections.db")
	s, err := Open(context.Background(), path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	s := testStore(t)

	got, err := s.Record(context.Background(), Correction{
		ParseID:   uuid.New(),
		Field:     "total",
		Extracted: "59.00",
		Corrected: "95.00",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecordListRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	parseID := uuid.New()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	older, err := s.Record(ctx, Correction{
		ParseID: parseID, Field: "vendor_name",
		Extracted: "ABC FIRMA", Corrected: "ABC FIRMA A.Ş.",
		CreatedAt: base,
	})
	require.NoError(t, err)
	newer, err := s.Record(ctx, Correction{
		ParseID: parseID, Field: "total",
		Extracted: "59.00", Corrected: "95.00",
		CreatedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// newest first
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
	assert.Equal(t, parseID, got[0].ParseID)
	assert.Equal(t, "total", got[0].Field)
	assert.Equal(t, "95.00", got[0].Corrected)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(time.Minute)))
}

func TestListLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, Correction{
			ParseID: uuid.New(), Field: "total",
			Extracted: "0", Corrected: "1",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	got, err := s.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
