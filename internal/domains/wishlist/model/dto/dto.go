package dto

import (
	"travelease/internal/domains/wishlist/model"
	"travelease/shared/constant"
)

type AddWishlistRequest struct {
	HotelID   int    `json:"hotel_id"   validate:"required,min=1"`
	HotelName string `json:"hotel_name" validate:"required,max=200"`
}

type EntryResponse struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	HotelID   int    `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	AddedAt   string `json:"added_at"`
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.UserID = entry.UserID
	r.HotelID = entry.HotelID
	r.HotelName = entry.HotelName
	r.AddedAt = entry.AddedAt.Format(constant.DateFormat)
}

type ContainsResponse struct {
	HotelID    int  `json:"hotel_id"`
	Wishlisted bool `json:"wishlisted"`
}
