package booking

import (
	"time"

	"github.com/bookeasy-app/booking-api/internal/httperr"
)

// ===============================
// Booking Draft
// ===============================

// Draft accumulates one in-progress selection. It is owned by exactly one
// wizard session; callers never share a Draft across sessions.
type Draft struct {
	Service  *Service    `json:"service"`
	Date     *DateOption `json:"date"`
	Time     *TimeSlot   `json:"time"`
	Customer *Identity   `json:"customer"`
	Status   Status      `json:"status"`
}

func NewDraft() *Draft {
	return &Draft{Status: InitialStatus()}
}

// SetService starts a fresh selection. Date and time are cleared so a
// re-entered draft can never carry a slot from another service.
func (d *Draft) SetService(s Service) error {
	if err := CanSetService(d.Status); err != nil {
		return err
	}

	d.Service = &s
	d.Date = nil
	d.Time = nil
	d.Status = StatusServiceChosen
	return nil
}

// SetDate picks (or re-picks) a day. The chosen time is always reset:
// slots belong to a single day.
func (d *Draft) SetDate(date DateOption) error {
	if err := CanSetDate(d.Status); err != nil {
		return err
	}

	d.Date = &date
	d.Time = nil
	d.Status = StatusDateChosen
	return nil
}

func (d *Draft) SetTime(slot TimeSlot) error {
	if err := CanSetTime(d.Status); err != nil {
		return err
	}

	if !slot.Available {
		return httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}

	d.Time = &slot
	d.Status = StatusTimeChosen
	return nil
}

// Finalize attaches the customer and produces the submission payload.
// It does not advance the status; the wizard owns the submit transition.
func (d *Draft) Finalize(customer *Identity) (*Submission, error) {
	if err := CanFinalize(d.Status); err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthenticated)
	}

	d.Customer = customer

	start := d.Time.Start
	end := start.Add(time.Duration(d.Service.DurationMin) * time.Minute)

	return &Submission{
		Service:  *d.Service,
		Start:    start,
		End:      end,
		Customer: *customer,
	}, nil
}

// ===============================
// Submit transitions (wizard-driven)
// ===============================

func (d *Draft) BeginSubmit() error {
	if err := CanSubmit(d.Status); err != nil {
		return err
	}
	d.Status = StatusSubmitting
	return nil
}

func (d *Draft) MarkFailed() error {
	if d.Status != StatusSubmitting {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	d.Status = StatusFailed
	return nil
}

// Retry reopens a failed draft for another confirm attempt. The selection
// itself is preserved.
func (d *Draft) Retry() error {
	if err := CanRetry(d.Status); err != nil {
		return err
	}
	d.Status = StatusTimeChosen
	return nil
}

func (d *Draft) MarkConfirmed() error {
	if d.Status != StatusSubmitting {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	d.Status = StatusConfirmed
	return nil
}

// Reset abandons the selection. Callable from any state.
func (d *Draft) Reset() {
	d.Service = nil
	d.Date = nil
	d.Time = nil
	d.Customer = nil
	d.Status = InitialStatus()
}
