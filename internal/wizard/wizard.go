package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
)

// SessionSource exposes the current identity to the wizard. The wizard reads
// it at confirm time only; it never initiates authentication.
type SessionSource interface {
	Current(ctx context.Context) (*booking.Identity, error)
}

// AvailabilityService produces the slot grid for a service on a day,
// with availability resolved against the scheduling provider.
type AvailabilityService interface {
	Slots(
		ctx context.Context,
		service booking.Service,
		date booking.DateOption,
	) ([]booking.TimeSlot, error)
}

// Options tune one wizard session.
type Options struct {
	WindowDays    int
	SubmitTimeout time.Duration
	Now           func() time.Time
}

func (o *Options) normalize() {
	if o.WindowDays <= 0 {
		o.WindowDays = 14
	}
	if o.SubmitTimeout <= 0 {
		o.SubmitTimeout = 10 * time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Wizard drives one booking from service choice to a confirmed booking.
// It owns its Draft exclusively; all entry points serialize on one mutex,
// which is released around provider calls so Cancel stays responsive while
// a fetch or submission is in flight.
type Wizard struct {
	mu sync.Mutex

	opts         Options
	scheduler    booking.Scheduler
	availability AvailabilityService
	session      SessionSource

	draft *booking.Draft

	dates []booking.DateOption
	slots []booking.TimeSlot

	// gen tags fetches with the selection they were computed for; results
	// arriving after the selection moved on are discarded.
	gen uint64

	needsRefetch bool
	terminal     booking.Status
	lastError    string
	result       *booking.SubmittedBooking
}

func New(
	scheduler booking.Scheduler,
	availability AvailabilityService,
	session SessionSource,
	opts Options,
) *Wizard {

	opts.normalize()

	return &Wizard{
		opts:         opts,
		scheduler:    scheduler,
		availability: availability,
		session:      session,
		draft:        booking.NewDraft(),
	}
}

// ===============================
// Transitions
// ===============================

// SelectService opens the wizard flow and generates the date window.
func (w *Wizard) SelectService(
	ctx context.Context,
	service booking.Service,
) ([]booking.DateOption, error) {

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureActive(); err != nil {
		return nil, err
	}

	if err := w.draft.SetService(service); err != nil {
		return nil, err
	}

	w.gen++
	w.slots = nil
	w.needsRefetch = false
	w.lastError = ""

	w.dates = booking.ListDates(w.opts.Now(), w.opts.WindowDays)

	return w.dates, nil
}

// SelectDate picks a day and fetches its slot grid from the provider.
// A failed fetch leaves the draft intact on the chosen day.
func (w *Wizard) SelectDate(
	ctx context.Context,
	date booking.DateOption,
) ([]booking.TimeSlot, error) {

	w.mu.Lock()

	if err := w.ensureActive(); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	if err := w.draft.SetDate(date); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	w.gen++
	w.slots = nil
	w.needsRefetch = false
	w.lastError = ""

	return w.fetchSlotsLocked(ctx, date)
}

// RefreshSlots re-fetches the grid for the current selection. Required after
// a slot-conflict failure before another confirm attempt.
func (w *Wizard) RefreshSlots(ctx context.Context) ([]booking.TimeSlot, error) {
	w.mu.Lock()

	if err := w.ensureActive(); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	if w.draft.Date == nil {
		w.mu.Unlock()
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}

	date := *w.draft.Date

	return w.fetchSlotsLocked(ctx, date)
}

// fetchSlotsLocked runs the availability call with the mutex released and
// discards the result when the selection changed underneath it. Callers must
// hold the mutex; it is unlocked on return.
func (w *Wizard) fetchSlotsLocked(
	ctx context.Context,
	date booking.DateOption,
) ([]booking.TimeSlot, error) {

	service := *w.draft.Service
	gen := w.gen
	w.mu.Unlock()

	slots, err := w.availability.Slots(ctx, service, date)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.gen != gen || w.terminal != "" {
		// selection moved on (or the wizard was cancelled) while fetching
		return nil, httperr.ErrBusiness(httperr.CodeStaleAvailability)
	}

	if err != nil {
		w.lastError = httperr.BusinessCode(err)
		return nil, err
	}

	w.slots = slots
	w.needsRefetch = false
	w.lastError = ""

	return slots, nil
}

// SelectTime locks in a slot. Unavailable slots are rejected; availability
// may have changed since the grid was fetched, so the caller should refresh
// and retry on rejection.
func (w *Wizard) SelectTime(ctx context.Context, slot booking.TimeSlot) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.ensureActive(); err != nil {
		return err
	}

	if err := w.draft.SetTime(slot); err != nil {
		return err
	}

	w.lastError = ""
	return nil
}

// Confirm finalizes the draft against the current session identity and
// submits it. At most one submission is in flight per draft; a competing
// confirm is rejected with submission_in_flight.
func (w *Wizard) Confirm(ctx context.Context) (*booking.SubmittedBooking, error) {
	w.mu.Lock()

	if err := w.ensureActive(); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	if w.draft.Status == booking.StatusSubmitting {
		w.mu.Unlock()
		return nil, httperr.ErrBusiness(httperr.CodeSubmissionInFlight)
	}

	if w.needsRefetch {
		// the last submission lost a slot race; availability must be
		// re-fetched before another attempt
		w.mu.Unlock()
		return nil, httperr.ErrBusiness(httperr.CodeStaleAvailability)
	}

	if w.draft.Status == booking.StatusFailed {
		if err := w.draft.Retry(); err != nil {
			w.mu.Unlock()
			return nil, err
		}
	}

	ident, err := w.session.Current(ctx)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}

	sub, err := w.draft.Finalize(ident)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}

	if err := w.draft.BeginSubmit(); err != nil {
		w.mu.Unlock()
		return nil, err
	}

	gen := w.gen
	w.mu.Unlock()

	submitCtx, cancel := context.WithTimeout(ctx, w.opts.SubmitTimeout)
	defer cancel()

	result, submitErr := w.scheduler.CreateBooking(submitCtx, *sub)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.terminal == booking.StatusCancelled || w.gen != gen {
		// abandoned while submitting; whatever came back is not ours to keep
		return nil, httperr.ErrBusiness(httperr.CodeStaleAvailability)
	}

	if submitErr != nil {
		return nil, w.failSubmitLocked(submitCtx, submitErr)
	}

	if err := w.draft.MarkConfirmed(); err != nil {
		return nil, err
	}

	w.terminal = booking.StatusConfirmed
	w.result = result
	w.lastError = ""
	w.draft.Reset()

	return result, nil
}

func (w *Wizard) failSubmitLocked(ctx context.Context, submitErr error) error {
	_ = w.draft.MarkFailed()

	code := httperr.BusinessCode(submitErr)
	if code == "" && ctx.Err() == context.DeadlineExceeded {
		code = httperr.CodeNetworkError
	}

	switch code {
	case httperr.CodeSlotConflict:
		// lost the race for the slot; force a fresh grid before retry
		w.needsRefetch = true
		w.lastError = code
		return httperr.ErrBusiness(code)

	case httperr.CodeNetworkError:
		// transient; the draft stays intact and confirm may be retried
		w.lastError = code
		return httperr.ErrBusiness(code)

	case httperr.CodeValidationFailed:
		// the provider rejected the draft itself; nothing here is salvageable
		w.draft.Reset()
		w.slots = nil
		w.dates = nil
		w.lastError = code
		return httperr.ErrBusiness(code)

	default:
		w.lastError = httperr.CodeNetworkError
		return httperr.ErrBusiness(httperr.CodeNetworkError)
	}
}

// Cancel abandons the wizard. Safe to call while a fetch or submission is
// outstanding; their results are discarded when they land.
func (w *Wizard) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.terminal != "" {
		return
	}

	w.gen++
	w.terminal = booking.StatusCancelled
	w.draft.Reset()
	w.dates = nil
	w.slots = nil
	w.needsRefetch = false
}

func (w *Wizard) ensureActive() error {
	if w.terminal != "" {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// ===============================
// State
// ===============================

// State reports the machine state: the draft status while the flow is live,
// the terminal status once confirmed or cancelled.
func (w *Wizard) State() booking.Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Wizard) stateLocked() booking.Status {
	if w.terminal != "" {
		return w.terminal
	}
	if w.lastError != "" && w.draft.Status == booking.StatusFailed {
		return booking.StatusFailed
	}
	return w.draft.Status
}

// Result returns the accepted booking after a successful confirm.
func (w *Wizard) Result() *booking.SubmittedBooking {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}
