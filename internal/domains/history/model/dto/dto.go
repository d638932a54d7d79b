package dto

import (
	"travelease/internal/domains/history/model"
	"travelease/shared"
	"travelease/shared/constant"
)

type EntryResponse struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	UserID    int    `json:"user_id"`
	BookingID int    `json:"booking_id"`
	HotelID   int    `json:"hotel_id"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.Type = entry.Type
	r.UserID = entry.UserID
	r.BookingID = entry.BookingID
	r.HotelID = entry.HotelID
	r.Details = entry.Details
	r.CreatedAt = entry.CreatedAt.Format(constant.DateFormat)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
