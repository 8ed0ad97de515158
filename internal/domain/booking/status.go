package booking

import "github.com/bookeasy-app/booking-api/internal/httperr"

// ===============================
// Draft Status
// ===============================

type Status string

const (
	StatusEmpty         Status = "empty"
	StatusServiceChosen Status = "service_chosen"
	StatusDateChosen    Status = "date_chosen"
	StatusTimeChosen    Status = "time_chosen"
	StatusSubmitting    Status = "submitting"
	StatusConfirmed     Status = "confirmed"
	StatusFailed        Status = "failed"
	StatusCancelled     Status = "cancelled"
)

func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// Progress only moves forward; every guard fails loudly so a misbehaving
// caller cannot silently skip a step.

func CanSetService(current Status) error {
	if current != StatusEmpty {
		return httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}
	return nil
}

func CanSetDate(current Status) error {
	if current != StatusServiceChosen && current != StatusDateChosen {
		return httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}
	return nil
}

func CanSetTime(current Status) error {
	if current != StatusDateChosen {
		return httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}
	return nil
}

func CanFinalize(current Status) error {
	if current != StatusTimeChosen {
		return httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}
	return nil
}

func CanSubmit(current Status) error {
	if current == StatusSubmitting {
		return httperr.ErrBusiness(httperr.CodeSubmissionInFlight)
	}
	if current != StatusTimeChosen {
		return httperr.ErrBusiness(httperr.CodeInvalidSelection)
	}
	return nil
}

func CanRetry(current Status) error {
	if current != StatusFailed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusEmpty
}
