package repository

import (
	"context"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/internal/domains/history/model"
	gRepo "travelease/shared/repository"
)

type History interface {
	GetAll(ctx context.Context) ([]model.Entry, error)
	Append(ctx context.Context, entry model.Entry) error
	NextID(ctx context.Context) (int, error)
}

type repositoryImpl struct {
	gRepo.Collection[model.Entry]
}

func New(store kvstore.Store, otel otel.Otel) History {
	return &repositoryImpl{
		Collection: gRepo.NewCollection[model.Entry](model.EntityName, store, otel),
	}
}
