package booking

import "time"

// Service is a catalog entry owned by the scheduling provider.
// Read-only on this side.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
}

// DateOption is one calendar day of the rolling booking window.
type DateOption struct {
	Date       time.Time `json:"date"`
	IsToday    bool      `json:"is_today"`
	IsTomorrow bool      `json:"is_tomorrow"`
}

// TimeSlot is one candidate start time on a given day.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	Label     string    `json:"label"`
	Available bool      `json:"available"`
}

type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// BookedInterval is an existing booking as reported by the scheduling
// provider, reduced to the interval that blocks other bookings.
type BookedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Submission is the payload produced by finalizing a draft.
type Submission struct {
	Service  Service   `json:"service"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Customer Identity  `json:"customer"`
}

// SubmittedBooking is a booking the scheduling provider accepted.
// Never fabricated locally.
type SubmittedBooking struct {
	ID          string    `json:"id"`
	Service     Service   `json:"service"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Customer    Identity  `json:"customer"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
