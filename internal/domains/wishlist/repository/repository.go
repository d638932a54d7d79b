package repository

import (
	"context"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/internal/domains/wishlist/model"
	gRepo "travelease/shared/repository"
)

type Wishlist interface {
	GetAll(ctx context.Context) ([]model.Entry, error)
	ReplaceAll(ctx context.Context, entries []model.Entry) error
	Append(ctx context.Context, entry model.Entry) error
	NextID(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Collection[model.Entry]
}

func New(store kvstore.Store, otel otel.Otel) Wishlist {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Entry](model.EntityName, store, otel),
	}
}
