package identity

import (
	"context"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
)

// Profile is the registration input.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Provider is the identity collaborator. One contract covers both the
// database-backed provider and the seeded in-memory one, so the wizard and
// the handlers never know which is active.
//
// Failures are business errors: invalid_credentials, account_exists,
// network_error.
type Provider interface {
	Login(
		ctx context.Context,
		email string,
		password string,
	) (*booking.Identity, error)

	Register(
		ctx context.Context,
		p Profile,
	) (*booking.Identity, error)

	ResetPassword(
		ctx context.Context,
		email string,
	) error

	Lookup(
		ctx context.Context,
		id string,
	) (*booking.Identity, error)
}
