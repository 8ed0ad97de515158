package booking

import (
	"context"
	"strconv"

	"github.com/bookeasy-app/booking-api/internal/audit"
	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/domain/history"
	"github.com/bookeasy-app/booking-api/internal/models"
)

// RecordConfirmed mirrors a provider-accepted booking into the local
// bookings table so the app can list history without asking the provider.
type RecordConfirmed struct {
	repo  history.Repository
	audit *audit.Dispatcher
}

func NewRecordConfirmed(
	repo history.Repository,
	audit *audit.Dispatcher,
) *RecordConfirmed {
	return &RecordConfirmed{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RecordConfirmed) Execute(
	ctx context.Context,
	userID string,
	result *domain.SubmittedBooking,
) (*models.Booking, error) {

	uid, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return nil, err
	}

	b := models.Booking{
		UserID:      uint(uid),
		BookingRef:  result.ID,
		ServiceID:   result.Service.ID,
		ServiceName: result.Service.Name,
		DurationMin: result.Service.DurationMin,
		Price:       result.Service.Price,
		Currency:    result.Service.Currency,
		StartTime:   result.Start,
		EndTime:     result.End,
		Status:      string(history.InitialStatus()),
		ConfirmedAt: result.ConfirmedAt,
	}

	if err := uc.repo.Create(ctx, &b); err != nil {
		return nil, err
	}

	ownerID := uint(uid)
	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"booking_ref": result.ID,
			"service":     result.Service.Name,
			"start":       result.Start,
		},
	})

	return &b, nil
}
