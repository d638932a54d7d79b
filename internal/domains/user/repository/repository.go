package repository

import (
	"context"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/internal/domains/user/model"
	gRepo "travelease/shared/repository"
)

type User interface {
	GetAll(ctx context.Context) ([]model.User, error)
	ReplaceAll(ctx context.Context, users []model.User) error
	Append(ctx context.Context, user model.User) error
	NextID(ctx context.Context) (int, error)
}

type userRepositoryImpl struct {
	gRepo.Collection[model.User]
}

func New(store kvstore.Store, otel otel.Otel) User {
	return &userRepositoryImpl{
		Collection: gRepo.NewCollection[model.User](model.EntityName, store, otel),
	}
}

// Session holds the zero-or-one active session record.
type Session interface {
	Get(ctx context.Context) (model.Session, bool, error)
	Put(ctx context.Context, session model.Session) error
	Clear(ctx context.Context) error
}

type sessionRepositoryImpl struct {
	gRepo.Singleton[model.Session]
}

func NewSession(store kvstore.Store, otel otel.Otel) Session {
	return &sessionRepositoryImpl{
		Singleton: gRepo.NewSingleton[model.Session](model.SessionEntityName, store, otel),
	}
}
