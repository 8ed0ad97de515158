package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultHours() Hours {
	return Hours{Open: 9, Close: 18, Interval: 30 * time.Minute}
}

func TestListDatesWindow(t *testing.T) {
	start := time.Date(2026, 9, 1, 15, 42, 13, 0, time.UTC)

	dates := ListDates(start, 14)
	require.Len(t, dates, 14)

	assert.True(t, dates[0].IsToday)
	assert.False(t, dates[0].IsTomorrow)
	assert.True(t, dates[1].IsTomorrow)
	assert.False(t, dates[1].IsToday)

	for i, d := range dates {
		// normalized to midnight regardless of when the window was opened
		assert.Equal(t, 0, d.Date.Hour())
		assert.Equal(t, 0, d.Date.Minute())

		if i > 0 {
			assert.Equal(t,
				dates[i-1].Date.AddDate(0, 0, 1),
				d.Date,
				"window must be chronological with no gaps",
			)
		}
		if i > 1 {
			assert.False(t, d.IsToday)
			assert.False(t, d.IsTomorrow)
		}
	}
}

func TestBuildSlotsGrid(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	slots := BuildSlots(day, defaultHours(), 30*time.Minute, nil)

	// 9:00 through 17:30 inclusive at 30 minute steps
	require.Len(t, slots, 18)

	assert.Equal(t, 9, slots[0].Start.Hour())
	assert.Equal(t, "9:00 AM", slots[0].Label)

	last := slots[len(slots)-1]
	assert.Equal(t, 17, last.Start.Hour())
	assert.Equal(t, 30, last.Start.Minute())

	for _, s := range slots {
		assert.True(t, s.Available, "empty day leaves every slot open")
	}
}

func TestBuildSlotsConflicts(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2026, 9, 1, h, m, 0, 0, time.UTC)
	}

	busy := []BookedInterval{
		{Start: at(10, 0), End: at(11, 0)},
		{Start: at(14, 30), End: at(15, 0)},
	}

	slots := BuildSlots(day, defaultHours(), 30*time.Minute, busy)

	byStart := make(map[string]TimeSlot, len(slots))
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}

	assert.True(t, byStart["09:30"].Available)
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.True(t, byStart["11:00"].Available)
	assert.False(t, byStart["14:30"].Available)
	assert.True(t, byStart["15:00"].Available)
}

func TestBuildSlotsLongServiceOverlapsAhead(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2026, 9, 1, h, m, 0, 0, time.UTC)
	}

	busy := []BookedInterval{
		{Start: at(11, 0), End: at(11, 30)},
	}

	// 60 minute service starting 10:30 would run into the 11:00 booking
	slots := BuildSlots(day, defaultHours(), 60*time.Minute, busy)

	byStart := make(map[string]TimeSlot, len(slots))
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}

	assert.True(t, byStart["09:30"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.False(t, byStart["11:00"].Available)
	assert.True(t, byStart["11:30"].Available)
}

func TestBuildSlotsClosingBound(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 60 minute service: boundaries from 17:30 on cannot finish by 18:00
	slots := BuildSlots(day, defaultHours(), 60*time.Minute, nil)

	for _, s := range slots {
		end := s.Start.Add(60 * time.Minute)
		closing := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

		if end.After(closing) {
			assert.False(t, s.Available, "slot %s runs past closing", s.Label)
		} else {
			assert.True(t, s.Available)
		}
	}

	last := slots[len(slots)-1]
	assert.Equal(t, "5:30 PM", last.Label)
	assert.False(t, last.Available)
}
