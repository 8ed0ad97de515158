package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookeasy-app/booking-api/internal/httperr"
)

func testService() Service {
	return Service{
		ID:          "svc-1",
		Name:        "Hair Cut",
		DurationMin: 30,
		Price:       25,
		Currency:    "USD",
	}
}

func testDate(t *testing.T) DateOption {
	t.Helper()
	return DateOption{
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		IsToday: true,
	}
}

func testSlot(hour, minute int) TimeSlot {
	start := time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
	return TimeSlot{
		Start:     start,
		Label:     start.Format("3:04 PM"),
		Available: true,
	}
}

func TestDraftProgression(t *testing.T) {
	d := NewDraft()
	require.Equal(t, StatusEmpty, d.Status)

	require.NoError(t, d.SetService(testService()))
	assert.Equal(t, StatusServiceChosen, d.Status)

	require.NoError(t, d.SetDate(testDate(t)))
	assert.Equal(t, StatusDateChosen, d.Status)

	require.NoError(t, d.SetTime(testSlot(14, 0)))
	assert.Equal(t, StatusTimeChosen, d.Status)

	sub, err := d.Finalize(&Identity{ID: "1", Email: "demo@bookeasy.com"})
	require.NoError(t, err)
	assert.Equal(t, "svc-1", sub.Service.ID)
	assert.Equal(t, sub.Start.Add(30*time.Minute), sub.End)

	// finalize does not advance the machine
	assert.Equal(t, StatusTimeChosen, d.Status)
}

func TestDraftSetDateBeforeService(t *testing.T) {
	d := NewDraft()

	err := d.SetDate(testDate(t))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSelection))
	assert.Equal(t, StatusEmpty, d.Status)
}

func TestDraftSetTimeRequiresDate(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetService(testService()))

	err := d.SetTime(testSlot(14, 0))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSelection))
}

func TestDraftRejectsUnavailableSlot(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetService(testService()))
	require.NoError(t, d.SetDate(testDate(t)))

	slot := testSlot(17, 30)
	slot.Available = false

	err := d.SetTime(slot)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSelection))
	assert.Nil(t, d.Time)
	assert.Equal(t, StatusDateChosen, d.Status)
}

func TestDraftRePickDateClearsTime(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetService(testService()))
	require.NoError(t, d.SetDate(testDate(t)))
	require.NoError(t, d.SetTime(testSlot(14, 0)))

	// picking a time closes the date step, another day needs a fresh step
	err := d.SetDate(testDate(t))
	require.Error(t, err)

	// from date_chosen a re-pick is allowed and drops nothing it shouldn't
	d2 := NewDraft()
	require.NoError(t, d2.SetService(testService()))
	require.NoError(t, d2.SetDate(testDate(t)))
	require.NoError(t, d2.SetDate(DateOption{
		Date:       time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		IsTomorrow: true,
	}))
	assert.Nil(t, d2.Time)
	assert.Equal(t, StatusDateChosen, d2.Status)
}

func TestDraftFinalizeWithoutSession(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetService(testService()))
	require.NoError(t, d.SetDate(testDate(t)))
	require.NoError(t, d.SetTime(testSlot(14, 0)))

	sub, err := d.Finalize(nil)
	require.Error(t, err)
	assert.Nil(t, sub)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))

	// selection survives, login then confirm again works
	assert.Equal(t, StatusTimeChosen, d.Status)
	assert.NotNil(t, d.Time)
}

func TestDraftSubmitLifecycle(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetService(testService()))
	require.NoError(t, d.SetDate(testDate(t)))
	require.NoError(t, d.SetTime(testSlot(14, 0)))

	require.NoError(t, d.BeginSubmit())
	assert.Equal(t, StatusSubmitting, d.Status)

	// a second submit while in flight is refused
	err := d.BeginSubmit()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSubmissionInFlight))

	require.NoError(t, d.MarkFailed())
	assert.Equal(t, StatusFailed, d.Status)

	require.NoError(t, d.Retry())
	assert.Equal(t, StatusTimeChosen, d.Status)
	assert.NotNil(t, d.Time)

	require.NoError(t, d.BeginSubmit())
	require.NoError(t, d.MarkConfirmed())
	assert.Equal(t, StatusConfirmed, d.Status)
	assert.True(t, d.Status.Terminal())
}

func TestDraftRetryOnlyFromFailed(t *testing.T) {
	d := NewDraft()

	err := d.Retry()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestDraftResetFromAnyState(t *testing.T) {
	states := []func(d *Draft){
		func(d *Draft) {},
		func(d *Draft) { _ = d.SetService(testService()) },
		func(d *Draft) {
			_ = d.SetService(testService())
			_ = d.SetDate(DateOption{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)})
		},
	}

	for _, setup := range states {
		d := NewDraft()
		setup(d)

		d.Reset()
		assert.Equal(t, StatusEmpty, d.Status)
		assert.Nil(t, d.Service)
		assert.Nil(t, d.Date)
		assert.Nil(t, d.Time)
		assert.Nil(t, d.Customer)
	}
}
