package repository

import (
	"context"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/internal/domains/booking/model"
	gRepo "travelease/shared/repository"
)

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	ReplaceAll(ctx context.Context, bookings []model.Booking) error
	Append(ctx context.Context, booking model.Booking) error
	NextID(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Collection[model.Booking]
}

func New(store kvstore.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Booking](model.EntityName, store, otel),
	}
}
