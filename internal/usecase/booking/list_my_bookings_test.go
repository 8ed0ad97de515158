package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy-app/booking-api/internal/domain/history"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/models"
)

type fakeHistoryRepo struct {
	bookings []models.Booking
}

func (r *fakeHistoryRepo) Create(ctx context.Context, b *models.Booking) error {
	b.ID = uint(len(r.bookings) + 1)
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeHistoryRepo) GetForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	for i := range r.bookings {
		if r.bookings[i].ID == bookingID && r.bookings[i].UserID == userID {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeHistoryRepo) Update(ctx context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (r *fakeHistoryRepo) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) ListEndedBefore(
	ctx context.Context,
	userID uint,
	cutoff time.Time,
) ([]models.Booking, error) {

	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID &&
			b.Status == string(history.StatusConfirmed) &&
			b.EndTime.Before(cutoff) {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ history.Repository = (*fakeHistoryRepo)(nil)

func TestListMyBookingsSplitsTabs(t *testing.T) {
	now := time.Now()

	repo := &fakeHistoryRepo{bookings: []models.Booking{
		{
			ID: 1, UserID: 7, ServiceName: "Hair Cut",
			StartTime: now.Add(2 * time.Hour),
			EndTime:   now.Add(2*time.Hour + 30*time.Minute),
			Status:    string(history.StatusConfirmed),
		},
		{
			// underway right now, still the user's next appointment
			ID: 2, UserID: 7, ServiceName: "Massage",
			StartTime: now.Add(-15 * time.Minute),
			EndTime:   now.Add(45 * time.Minute),
			Status:    string(history.StatusConfirmed),
		},
		{
			ID: 3, UserID: 7, ServiceName: "Facial",
			StartTime: now.Add(-3 * time.Hour),
			EndTime:   now.Add(-150 * time.Minute),
			Status:    string(history.StatusConfirmed),
		},
		{
			ID: 4, UserID: 7, ServiceName: "Manicure",
			StartTime: now.Add(time.Hour),
			EndTime:   now.Add(90 * time.Minute),
			Status:    string(history.StatusCancelled),
		},
	}}

	uc := NewListMyBookings(repo)

	out, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)

	names := func(bs []models.Booking) []string {
		var out []string
		for _, b := range bs {
			out = append(out, b.ServiceName)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Hair Cut", "Massage"}, names(out.Upcoming))
	assert.ElementsMatch(t, []string{"Facial", "Manicure"}, names(out.Past))

	// the ended confirmed booking was rolled to completed on read
	completed, err := repo.GetForUser(context.Background(), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, string(history.StatusCompleted), completed.Status)
	require.NotNil(t, completed.CompletedAt)
}
