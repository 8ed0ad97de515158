package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

func testHours() domain.Hours {
	return domain.Hours{Open: 9, Close: 18, Interval: 30 * time.Minute}
}

func TestGetAvailabilityDates(t *testing.T) {
	uc := NewGetAvailability(&stubScheduler{}, testHours(), 14)

	dates := uc.Dates(context.Background())
	require.Len(t, dates, 14)
	assert.True(t, dates[0].IsToday)
	assert.True(t, dates[1].IsTomorrow)
}

func TestGetAvailabilitySlots(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2026, 9, 1, h, m, 0, 0, time.UTC)
	}

	sched := &stubScheduler{busy: []domain.BookedInterval{
		// provider order is not guaranteed, the usecase must sort
		{Start: at(14, 0), End: at(14, 30)},
		{Start: at(10, 0), End: at(10, 30)},
	}}

	uc := NewGetAvailability(sched, testHours(), 14)

	slots, err := uc.Slots(
		context.Background(),
		domain.Service{ID: "svc-1", DurationMin: 30},
		domain.DateOption{Date: day, IsToday: true},
	)
	require.NoError(t, err)
	require.Len(t, slots, 18)

	byLabel := make(map[string]domain.TimeSlot)
	for _, s := range slots {
		byLabel[s.Label] = s
	}

	assert.False(t, byLabel["10:00 AM"].Available)
	assert.False(t, byLabel["2:00 PM"].Available)
	assert.True(t, byLabel["2:30 PM"].Available)
}

func TestGetAvailabilitySlotsProviderDown(t *testing.T) {
	sched := &stubScheduler{err: errors.New("connection refused")}
	uc := NewGetAvailability(sched, testHours(), 14)

	_, err := uc.Slots(
		context.Background(),
		domain.Service{ID: "svc-1", DurationMin: 30},
		domain.DateOption{Date: time.Now()},
	)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAvailabilityUnavailable))
}
