package handlers

import (
	"time"

	"github.com/bookeasy-app/booking-api/internal/timezone"
)

const dayLayout = "2006-01-02"

// parseDay reads a calendar day in the app timezone.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(
		dayLayout,
		s,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
