package dto

import (
	"travelease/internal/domains/hotel/model"
	"travelease/shared"
)

type RoomResponse struct {
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available int     `json:"available"`
}

type HotelResponse struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Price       float64        `json:"price"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Amenities   []string       `json:"amenities"`
	Rooms       []RoomResponse `json:"rooms"`
}

func (r *HotelResponse) FromModel(hotel model.Hotel) {
	r.ID = hotel.ID
	r.Name = hotel.Name
	r.City = hotel.City
	r.Country = hotel.Country
	r.Price = hotel.Price
	r.Rating = hotel.Rating
	r.Reviews = hotel.Reviews
	r.Image = hotel.Image
	r.Description = hotel.Description
	r.Amenities = hotel.Amenities

	r.Rooms = make([]RoomResponse, len(hotel.Rooms))
	for i, room := range hotel.Rooms {
		r.Rooms[i] = RoomResponse(room)
	}
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}

type DestinationResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image"`
}

func (r *DestinationResponse) FromModel(destination model.Destination) {
	r.ID = destination.ID
	r.Name = destination.Name
	r.Country = destination.Country
	r.Image = destination.Image
}
