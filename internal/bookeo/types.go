package bookeo

import "time"

const (
	DefaultBaseURL = "https://api.bookeo.com/v2"

	defaultTimeout = 10 * time.Second

	headerAppID     = "X-Bookeo-appId"
	headerSecretKey = "X-Bookeo-secretKey"
)

// ===============================
// Wire types
// ===============================

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type product struct {
	ProductID       string `json:"productId"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           price  `json:"price"`
	Category        string `json:"category"`
}

type price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type bookingRecord struct {
	BookingNumber string    `json:"bookingNumber"`
	ProductID     string    `json:"productId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	CreationTime  time.Time `json:"creationTime"`
}

type customer struct {
	ID           string `json:"id,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type participantDetail struct {
	PersonID int               `json:"personId"`
	Details  map[string]string `json:"details"`
}

type createBookingRequest struct {
	ProductID          string              `json:"productId"`
	StartTime          time.Time           `json:"startTime"`
	EndTime            time.Time           `json:"endTime"`
	CustomerID         string              `json:"customerId,omitempty"`
	Customer           *customer           `json:"customer,omitempty"`
	ParticipantDetails []participantDetail `json:"participantDetails,omitempty"`
}

type cancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
