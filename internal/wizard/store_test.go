package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	svc := hairCut()
	snap := Snapshot{
		UserID:  "1",
		Status:  booking.StatusServiceChosen,
		Service: &svc,
	}

	require.NoError(t, store.Save(ctx, "sess-1", snap, time.Minute))

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.UserID)
	assert.Equal(t, booking.StatusServiceChosen, got.Status)
	require.NotNil(t, got.Service)
	assert.Equal(t, "svc-hair", got.Service.ID)
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", Snapshot{UserID: "1"}, time.Millisecond))

	time.Sleep(5 * time.Millisecond)

	_, err := store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", Snapshot{UserID: "1"}, 0))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
