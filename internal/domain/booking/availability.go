package booking

import "time"

// Hours is the fixed working-hours window slots are generated from.
type Hours struct {
	Open     int
	Close    int
	Interval time.Duration
}

// ListDates generates the rolling date window starting at windowStart.
// Day 0 is today, day 1 tomorrow; the sequence is strictly chronological
// with no gaps. Regenerated per wizard session, never mutated.
func ListDates(windowStart time.Time, windowSize int) []DateOption {
	day := time.Date(
		windowStart.Year(), windowStart.Month(), windowStart.Day(),
		0, 0, 0, 0,
		windowStart.Location(),
	)

	dates := make([]DateOption, 0, windowSize)
	for i := 0; i < windowSize; i++ {
		dates = append(dates, DateOption{
			Date:       day.AddDate(0, 0, i),
			IsToday:    i == 0,
			IsTomorrow: i == 1,
		})
	}

	return dates
}

// BuildSlots enumerates one slot per interval boundary between opening and
// closing hour. A slot is unavailable when the service would overlap an
// existing booking or run past closing. busy must be sorted by start time.
func BuildSlots(
	date time.Time,
	hours Hours,
	duration time.Duration,
	busy []BookedInterval,
) []TimeSlot {

	loc := date.Location()

	atHour := func(h int) time.Time {
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			h, 0, 0, 0,
			loc,
		)
	}

	dayStart := atHour(hours.Open)
	dayEnd := atHour(hours.Close)

	var slots []TimeSlot

	busyIdx := 0

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(hours.Interval) {

		slotStart := cur
		slotEnd := cur.Add(duration)

		// skip bookings that ended before this boundary
		for busyIdx < len(busy) && !busy[busyIdx].End.After(slotStart) {
			busyIdx++
		}

		conflict := false
		for i := busyIdx; i < len(busy); i++ {
			b := busy[i]
			if !b.Start.Before(slotEnd) {
				break
			}
			if slotStart.Before(b.End) && slotEnd.After(b.Start) {
				conflict = true
				break
			}
		}

		slots = append(slots, TimeSlot{
			Start:     slotStart,
			Label:     slotStart.Format("3:04 PM"),
			Available: !conflict && !slotEnd.After(dayEnd),
		})
	}

	return slots
}
