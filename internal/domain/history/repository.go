package history

import (
	"context"
	"time"

	"github.com/bookeasy-app/booking-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	GetForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListEndedBefore(
		ctx context.Context,
		userID uint,
		cutoff time.Time,
	) ([]models.Booking, error)
}
