package httperr

import "errors"

// ===============================
// Business error codes
// ===============================

const (
	CodeInvalidSelection        = "invalid_selection"
	CodeUnauthenticated         = "unauthenticated"
	CodeAvailabilityUnavailable = "availability_unavailable"
	CodeNetworkError            = "network_error"
	CodeSlotConflict            = "slot_conflict"
	CodeValidationFailed        = "validation_failed"
	CodeInvalidCredentials      = "invalid_credentials"
	CodeAccountExists           = "account_exists"
	CodeInvalidState            = "invalid_state"
	CodeSubmissionInFlight      = "submission_in_flight"
	CodeStaleAvailability       = "stale_availability"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" for any other error.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
