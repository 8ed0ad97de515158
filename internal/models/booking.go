package models

import "time"

// Local mirror of a booking accepted by the scheduling provider.
// The provider's record is authoritative; this row backs the bookings tab.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BookingRef string `gorm:"size:64;uniqueIndex;not null" json:"booking_ref"`

	ServiceID   string  `gorm:"size:64;not null" json:"service_id"`
	ServiceName string  `gorm:"size:100;not null" json:"service_name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Currency    string  `gorm:"size:3;default:'USD'" json:"currency"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	ConfirmedAt time.Time  `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
