package model

import (
	"time"
)

const (
	EntityName = "history"

	TypeHotelBooking     = "hotel_booking"
	TypeBookingCancelled = "booking_cancelled"
)

// Entry is one append-only travel history record. Entries are never
// mutated or deleted.
type Entry struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	UserID    int       `json:"user_id"`
	BookingID int       `json:"booking_id"`
	HotelID   int       `json:"hotel_id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
