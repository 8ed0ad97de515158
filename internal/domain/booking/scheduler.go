package booking

import (
	"context"
	"time"
)

// Scheduler is the scheduling provider this app books against. The provider
// is authoritative for the catalog, existing bookings and acceptance of new
// ones; nothing on this side fabricates a SubmittedBooking.
type Scheduler interface {
	// -------- Catalog --------
	ListServices(ctx context.Context) ([]Service, error)

	// -------- Availability --------
	ListBookings(
		ctx context.Context,
		serviceID string,
		start time.Time,
		end time.Time,
	) ([]BookedInterval, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		sub Submission,
	) (*SubmittedBooking, error)

	CancelBooking(
		ctx context.Context,
		bookingRef string,
		reason string,
	) error
}
