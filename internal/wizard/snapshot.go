package wizard

import (
	"github.com/bookeasy-app/booking-api/internal/domain/booking"
)

// Snapshot is the serializable form of a wizard session. It carries selection
// state only; an in-flight submission is never persisted, so a session
// rehydrated mid-submit comes back as time_chosen and may confirm again.
type Snapshot struct {
	UserID       string                    `json:"user_id,omitempty"`
	Status       booking.Status            `json:"status"`
	Service      *booking.Service          `json:"service,omitempty"`
	Date         *booking.DateOption       `json:"date,omitempty"`
	Time         *booking.TimeSlot         `json:"time,omitempty"`
	Dates        []booking.DateOption      `json:"dates,omitempty"`
	Slots        []booking.TimeSlot        `json:"slots,omitempty"`
	NeedsRefetch bool                      `json:"needs_refetch,omitempty"`
	Terminal     booking.Status            `json:"terminal,omitempty"`
	LastError    string                    `json:"last_error,omitempty"`
	Result       *booking.SubmittedBooking `json:"result,omitempty"`
}

// Snapshot captures the current session state for persistence.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	status := w.draft.Status
	if status == booking.StatusSubmitting {
		status = booking.StatusTimeChosen
	}

	return Snapshot{
		Status:       status,
		Service:      w.draft.Service,
		Date:         w.draft.Date,
		Time:         w.draft.Time,
		Dates:        w.dates,
		Slots:        w.slots,
		NeedsRefetch: w.needsRefetch,
		Terminal:     w.terminal,
		LastError:    w.lastError,
		Result:       w.result,
	}
}

// Restore rebuilds a wizard from a persisted snapshot.
func Restore(
	snap Snapshot,
	scheduler booking.Scheduler,
	availability AvailabilityService,
	session SessionSource,
	opts Options,
) *Wizard {

	w := New(scheduler, availability, session, opts)

	w.draft.Service = snap.Service
	w.draft.Date = snap.Date
	w.draft.Time = snap.Time
	if snap.Status != "" {
		w.draft.Status = snap.Status
	}

	w.dates = snap.Dates
	w.slots = snap.Slots
	w.needsRefetch = snap.NeedsRefetch
	w.terminal = snap.Terminal
	w.lastError = snap.LastError
	w.result = snap.Result

	return w
}
