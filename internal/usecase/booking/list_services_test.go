package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

type stubScheduler struct {
	services []domain.Service
	busy     []domain.BookedInterval
	err      error
}

func (s *stubScheduler) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services, s.err
}

func (s *stubScheduler) ListBookings(
	ctx context.Context,
	serviceID string,
	start, end time.Time,
) ([]domain.BookedInterval, error) {
	return s.busy, s.err
}

func (s *stubScheduler) CreateBooking(
	ctx context.Context,
	sub domain.Submission,
) (*domain.SubmittedBooking, error) {
	return nil, s.err
}

func (s *stubScheduler) CancelBooking(ctx context.Context, ref, reason string) error {
	return s.err
}

func TestListServicesAssignsIcons(t *testing.T) {
	sched := &stubScheduler{services: []domain.Service{
		{ID: "1", Name: "Hair Cut"},
		{ID: "2", Name: "Deep Tissue Massage"},
		{ID: "3", Name: "Manicure"},
		{ID: "4", Name: "Facial Treatment"},
		{ID: "5", Name: "Personal Training"},
		{ID: "6", Name: "Consultation"},
	}}

	uc := NewListServices(sched)

	services, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 6)

	icons := make(map[string]string)
	for _, s := range services {
		icons[s.Name] = s.Icon
	}

	assert.Equal(t, "cut", icons["Hair Cut"])
	assert.Equal(t, "flower", icons["Deep Tissue Massage"])
	assert.Equal(t, "hand-left", icons["Manicure"])
	assert.Equal(t, "sparkles", icons["Facial Treatment"])
	assert.Equal(t, "fitness", icons["Personal Training"])
	assert.Equal(t, "calendar", icons["Consultation"])
}

func TestListServicesProviderDown(t *testing.T) {
	sched := &stubScheduler{err: httperr.ErrBusiness(httperr.CodeNetworkError)}
	uc := NewListServices(sched)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNetworkError))
}
