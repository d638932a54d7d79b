package service

import (
	"context"
	"fmt"
	"travelease/infras/otel"
	"travelease/internal/domains/history/model"
	"travelease/internal/domains/history/model/dto"
	"travelease/internal/domains/history/repository"
	userRepo "travelease/internal/domains/user/repository"
	"travelease/shared/constant"
	gDto "travelease/shared/dto"
	"travelease/shared/timezone"

	"github.com/rs/zerolog/log"
)

// AppendRequest describes one history record to log. The owning user
// always comes from the active session.
type AppendRequest struct {
	Type      string
	BookingID int
	HotelID   int
	Details   string
}

type History interface {
	Append(ctx context.Context, req AppendRequest) error
	GetUserHistory(ctx context.Context) ([]dto.EntryResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetEntriesResponse, error)
}

type serviceImpl struct {
	repo        repository.History
	sessionRepo userRepo.Session
	otel        otel.Otel
}

func New(repo repository.History, sessionRepo userRepo.Session, otel otel.Otel) History {
	return &serviceImpl{
		repo:        repo,
		sessionRepo: sessionRepo,
		otel:        otel,
	}
}

// Append logs one entry for the active user. Without a session it is a
// silent no-op so booking flows never fail on best-effort logging.
func (s *serviceImpl) Append(ctx context.Context, req AppendRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AppendHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		log.Debug().Str("type", req.Type).Msg("no active session, skipping history entry")

		return nil
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate history id")

		return fmt.Errorf("failed to allocate history id: %w", err)
	}

	entry := model.Entry{
		ID:        id,
		Type:      req.Type,
		UserID:    session.UserID,
		BookingID: req.BookingID,
		HotelID:   req.HotelID,
		Details:   req.Details,
		CreatedAt: timezone.Now(),
	}

	if err = s.repo.Append(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to append history entry")

		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// GetUserHistory returns the active user's entries, empty without a
// session.
func (s *serviceImpl) GetUserHistory(ctx context.Context) (res []dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserHistory")
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
		log.Error().Err(err).Msg("failed to get history")

		return nil, fmt.Errorf("failed to get history: %w", err)
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

// GetAll lists every entry, paginated, for administrative views.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get history")

		return res, fmt.Errorf("failed to get history: %w", err)
	}

	page := gDto.Paginate(entries, params)
	res.FromModels(page, len(entries), params.Limit)

	return res, nil
}
