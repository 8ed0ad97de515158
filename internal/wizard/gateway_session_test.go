package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/identity"
)

// The identity gateway satisfies SessionSource directly, so an embedded
// client can drive a wizard straight off its login state.
func TestWizardWithGatewaySession(t *testing.T) {
	gateway := identity.NewGateway(identity.NewMockProvider())

	sched := &fakeScheduler{}
	avail := &fakeAvailability{}
	w := newTestWizard(sched, avail, gateway)

	ctx := context.Background()

	dates, err := w.SelectService(ctx, hairCut())
	require.NoError(t, err)
	slots, err := w.SelectDate(ctx, dates[0])
	require.NoError(t, err)
	require.NoError(t, w.SelectTime(ctx, slotAt(slots, "2:00 PM")))

	// not logged in yet
	_, err = w.Confirm(ctx)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))
	assert.Equal(t, booking.StatusTimeChosen, w.State())

	_, err = gateway.Login(ctx, "demo@bookeasy.com", "password123")
	require.NoError(t, err)

	result, err := w.Confirm(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "demo@bookeasy.com", result.Customer.Email)
}
