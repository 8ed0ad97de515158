package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

type GetAvailability struct {
	scheduler  domain.Scheduler
	hours      domain.Hours
	windowDays int
	now        func() time.Time
}

func NewGetAvailability(
	scheduler domain.Scheduler,
	hours domain.Hours,
	windowDays int,
) *GetAvailability {
	return &GetAvailability{
		scheduler:  scheduler,
		hours:      hours,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Dates returns the rolling booking window.
func (uc *GetAvailability) Dates(ctx context.Context) []domain.DateOption {
	return domain.ListDates(uc.now(), uc.windowDays)
}

// Slots builds the grid for one service on one day, resolved against the
// provider's existing bookings. Provider failures surface as
// availability_unavailable; no grid is returned in that case.
func (uc *GetAvailability) Slots(
	ctx context.Context,
	service domain.Service,
	date domain.DateOption,
) ([]domain.TimeSlot, error) {

	day := date.Date
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	busy, err := uc.scheduler.ListBookings(ctx, service.ID, dayStart, dayEnd)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAvailabilityUnavailable)
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})

	duration := time.Duration(service.DurationMin) * time.Minute

	return domain.BuildSlots(day, uc.hours, duration, busy), nil
}
