package repository

import (
	"context"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/internal/domains/hotel/model"
	gRepo "travelease/shared/repository"
)

type Hotel interface {
	GetAll(ctx context.Context) ([]model.Hotel, error)
	ReplaceAll(ctx context.Context, hotels []model.Hotel) error
}

type hotelRepositoryImpl struct {
	gRepo.Collection[model.Hotel]
}

func New(store kvstore.Store, otel otel.Otel) Hotel {
	return &hotelRepositoryImpl{
		Collection: gRepo.NewCollection[model.Hotel](model.EntityName, store, otel),
	}
}

type Destination interface {
	GetAll(ctx context.Context) ([]model.Destination, error)
	ReplaceAll(ctx context.Context, destinations []model.Destination) error
}

type destinationRepositoryImpl struct {
	gRepo.Collection[model.Destination]
}

func NewDestination(store kvstore.Store, otel otel.Otel) Destination {
	return &destinationRepositoryImpl{
		Collection: gRepo.NewCollection[model.Destination](model.DestinationEntityName, store, otel),
	}
}
