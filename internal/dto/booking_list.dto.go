package dto

import (
	"time"

	"github.com/bookeasy-app/booking-api/internal/models"
)

type BookingListDTO struct {
	ID          uint       `json:"id"`
	BookingRef  string     `json:"booking_ref"`
	ServiceName string     `json:"service_name"`
	DurationMin int        `json:"duration_min"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	ConfirmedAt time.Time  `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func ToBooking(b *models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:          b.ID,
		BookingRef:  b.BookingRef,
		ServiceName: b.ServiceName,
		DurationMin: b.DurationMin,
		Price:       b.Price,
		Currency:    b.Currency,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		ConfirmedAt: b.ConfirmedAt,
		CancelledAt: b.CancelledAt,
		CompletedAt: b.CompletedAt,
	}
}

func ToBookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBooking(&bookings[i]))
	}
	return out
}
