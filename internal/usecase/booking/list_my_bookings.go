package booking

import (
	"context"

	"github.com/bookeasy-app/booking-api/internal/domain/history"
	"github.com/bookeasy-app/booking-api/internal/models"
	"github.com/bookeasy-app/booking-api/internal/timezone"
)

// ListMyBookings splits the user's bookings into upcoming and past, the two
// tabs the app renders. Confirmed bookings whose end time has passed are
// rolled to completed on read.
type ListMyBookings struct {
	repo history.Repository
}

func NewListMyBookings(repo history.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

type MyBookings struct {
	Upcoming []models.Booking `json:"upcoming"`
	Past     []models.Booking `json:"past"`
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
) (*MyBookings, error) {

	now := timezone.Now()

	ended, err := uc.repo.ListEndedBefore(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	for i := range ended {
		b := &ended[i]
		if err := history.Complete(b, now); err != nil {
			continue
		}
		if err := uc.repo.Update(ctx, b); err != nil {
			return nil, err
		}
	}

	all, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := MyBookings{
		Upcoming: make([]models.Booking, 0),
		Past:     make([]models.Booking, 0),
	}

	for _, b := range all {
		// an appointment underway stays on the upcoming tab until it ends
		if b.Status == string(history.StatusConfirmed) && b.EndTime.After(now) {
			out.Upcoming = append(out.Upcoming, b)
		} else {
			out.Past = append(out.Past, b)
		}
	}

	return &out, nil
}
