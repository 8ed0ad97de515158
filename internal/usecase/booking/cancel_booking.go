package booking

import (
	"context"

	"github.com/bookeasy-app/booking-api/internal/audit"
	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/domain/history"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/models"
	"github.com/bookeasy-app/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo      history.Repository
	scheduler domain.Scheduler
	audit     *audit.Dispatcher
}

func NewCancelBooking(
	repo history.Repository,
	scheduler domain.Scheduler,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:      repo,
		scheduler: scheduler,
		audit:     audit,
	}
}

// Execute cancels at the provider first; the mirror only flips after the
// provider accepted the cancellation.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := history.CanCancel(history.Status(b.Status)); err != nil {
		return nil, err
	}

	if err := uc.scheduler.CancelBooking(ctx, b.BookingRef, reason); err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := history.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"booking_ref": b.BookingRef,
			"reason":      reason,
		},
	})

	return b, nil
}
