package dto

import (
	"time"
	"travelease/internal/domains/booking/model"
	"travelease/shared"
	"travelease/shared/constant"
)

const (
	dateLayout = "2006-01-02"

	// Tax applied on top of the room total on the payment page.
	taxRate = 0.15
)

type CreateBookingRequest struct {
	HotelID       int     `json:"hotel_id"        validate:"required,min=1"`
	HotelName     string  `json:"hotel_name"      validate:"required,max=200"`
	RoomType      string  `json:"room_type"       validate:"required,max=100"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Nights        int     `json:"nights"          validate:"required,min=1"`
	Guests        int     `json:"guests"          validate:"required,min=1"`
	CheckIn       string  `json:"check_in"        validate:"required"`
	CheckOut      string  `json:"check_out"       validate:"required"`

	// Mock payment fields, accepted and discarded.
	CardNumber string `json:"card_number" validate:"omitempty,max=20"`
	CardName   string `json:"card_name"   validate:"omitempty,max=100"`
	CardExpiry string `json:"card_expiry" validate:"omitempty,max=10"`
	CardCVV    string `json:"card_cvv"    validate:"omitempty,max=4"`
}

// Dates parses and orders the stay dates.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(dateLayout, c.CheckOut)

	return checkIn, checkOut, err
}

type BookingResponse struct {
	ID            int     `json:"id"`
	BookingNumber string  `json:"booking_number"`
	HotelID       int     `json:"hotel_id"`
	HotelName     string  `json:"hotel_name"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	Nights        int     `json:"nights"`
	Guests        int     `json:"guests"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Total         float64 `json:"total"`
	TotalWithTax  float64 `json:"total_with_tax"`
	UserID        int     `json:"user_id"`
	UserName      string  `json:"user_name"`
	UserEmail     string  `json:"user_email"`
	Status        string  `json:"status"`
	BookedAt      string  `json:"booked_at"`
	CancelledAt   string  `json:"cancelled_at,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.BookingNumber = booking.BookingNumber
	r.HotelID = booking.HotelID
	r.HotelName = booking.HotelName
	r.RoomType = booking.RoomType
	r.PricePerNight = booking.PricePerNight
	r.Nights = booking.Nights
	r.Guests = booking.Guests
	r.CheckIn = booking.CheckIn.Format(dateLayout)
	r.CheckOut = booking.CheckOut.Format(dateLayout)
	r.Total = booking.Total
	r.TotalWithTax = booking.Total * (1 + taxRate)
	r.UserID = booking.UserID
	r.UserName = booking.UserName
	r.UserEmail = booking.UserEmail
	r.Status = booking.Status
	r.BookedAt = booking.BookedAt.Format(constant.DateFormat)

	if booking.CancelledAt != nil {
		r.CancelledAt = booking.CancelledAt.Format(constant.DateFormat)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
