package service

import (
	"context"
	"fmt"
	"travelease/infras/otel"
	"travelease/internal/domains/user/repository"
	"travelease/internal/domains/wishlist/model"
	"travelease/internal/domains/wishlist/model/dto"
	wishlistRepo "travelease/internal/domains/wishlist/repository"
	"travelease/shared/constant"
	"travelease/shared/failure"
	"travelease/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Wishlist interface {
	IsInWishlist(ctx context.Context, hotelID int) (bool, error)
	Add(ctx context.Context, req dto.AddWishlistRequest) (dto.EntryResponse, error)
	Remove(ctx context.Context, hotelID int) error
	GetUserWishlist(ctx context.Context) ([]dto.EntryResponse, error)
}

type serviceImpl struct {
	repo        wishlistRepo.Wishlist
	sessionRepo repository.Session
	otel        otel.Otel
}

func New(repo wishlistRepo.Wishlist, sessionRepo repository.Session, otel otel.Otel) Wishlist {
	return &serviceImpl{
		repo:        repo,
		sessionRepo: sessionRepo,
		otel:        otel,
	}
}

// IsInWishlist reports membership for the active user. Without a
// session it is always false, never an error.
func (s *serviceImpl) IsInWishlist(ctx context.Context, hotelID int) (wishlisted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsInWishlist")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return false, fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		return false, nil
	}

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist")

		return false, fmt.Errorf("failed to get wishlist: %w", err)
	}

	for _, entry := range entries {
		if entry.UserID == session.UserID && entry.HotelID == hotelID {
			return true, nil
		}
	}

	return false, nil
}

// Add saves a hotel for the active user. A second add for the same
// hotel conflicts and leaves the collection unchanged.
func (s *serviceImpl) Add(ctx context.Context, req dto.AddWishlistRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddToWishlist")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		return res, failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist")

		return res, fmt.Errorf("failed to get wishlist: %w", err)
	}

	for _, entry := range entries {
		if entry.UserID == session.UserID && entry.HotelID == req.HotelID {
			return res, failure.Conflict("hotel is already in wishlist") // nolint:wrapcheck
		}
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate wishlist id")

		return res, fmt.Errorf("failed to allocate wishlist id: %w", err)
	}

	entry := model.Entry{
		ID:        id,
		UserID:    session.UserID,
		HotelID:   req.HotelID,
		HotelName: req.HotelName,
		AddedAt:   timezone.Now(),
	}

	if err = s.repo.Append(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to add wishlist entry")

		return res, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	res.FromModel(entry)

	return res, nil
}

// Remove filters out every (user, hotel) match. Removing a hotel that
// was never saved is not an error.
func (s *serviceImpl) Remove(ctx context.Context, hotelID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveFromWishlist")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		return failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist")

		return fmt.Errorf("failed to get wishlist: %w", err)
	}

	kept := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.UserID == session.UserID && entry.HotelID == hotelID {
			continue
		}

		kept = append(kept, entry)
	}

	if len(kept) == len(entries) {
		return nil
	}

	if err = s.repo.ReplaceAll(ctx, kept); err != nil {
		log.Error().Err(err).Msg("failed to remove wishlist entry")

		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	return nil
}

// GetUserWishlist returns the active user's entries, empty without a
// session.
func (s *serviceImpl) GetUserWishlist(ctx context.Context) (res []dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserWishlist")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	res = []dto.EntryResponse{}

	if !ok {
		return res, nil
	}

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get wishlist")

		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	for _, entry := range entries {
		if entry.UserID != session.UserID {
			continue
		}

		var item dto.EntryResponse
		item.FromModel(entry)
		res = append(res, item)
	}

	return res, nil
}
