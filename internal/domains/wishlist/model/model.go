package model

import (
	"time"
)

const (
	EntityName = "wishlist"
)

// Entry links one user to one saved hotel. At most one entry exists
// per (user, hotel) pair.
type Entry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	HotelID   int       `json:"hotel_id"`
	HotelName string    `json:"hotel_name"`
	AddedAt   time.Time `json:"added_at"`
}
