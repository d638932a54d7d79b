package model

import (
	"time"
)

const (
	EntityName = "bookings"

	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking denormalizes the owning user from the session at creation
// time, so the record stays readable after profile changes.
type Booking struct {
	ID            int        `json:"id"`
	BookingNumber string     `json:"booking_number"`
	HotelID       int        `json:"hotel_id"`
	HotelName     string     `json:"hotel_name"`
	RoomType      string     `json:"room_type"`
	PricePerNight float64    `json:"price_per_night"`
	Nights        int        `json:"nights"`
	Guests        int        `json:"guests"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      time.Time  `json:"check_out"`
	Total         float64    `json:"total"`
	UserID        int        `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserEmail     string     `json:"user_email"`
	Status        string     `json:"status"`
	BookedAt      time.Time  `json:"booked_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}
