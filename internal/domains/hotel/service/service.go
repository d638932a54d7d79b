package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"travelease/config"
	"travelease/infras/otel"
	"travelease/internal/domains/hotel/model"
	"travelease/internal/domains/hotel/model/dto"
	"travelease/internal/domains/hotel/repository"
	"travelease/shared"
	"travelease/shared/cache"
	"travelease/shared/constant"
	gDto "travelease/shared/dto"
	"travelease/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel        = "hotel:get"
	cacheGetAllHotels    = "hotel:gets"
	cacheSearchHotels    = "hotel:search"
	cacheGetDestinations = "destination:gets"
)

type Hotel interface {
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id int) (dto.HotelResponse, error)
	Search(ctx context.Context, city string, params gDto.QueryParams) (dto.GetHotelsResponse, error)
	Destinations(ctx context.Context) ([]dto.DestinationResponse, error)
}

type serviceImpl struct {
	repo            repository.Hotel
	destinationRepo repository.Destination
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Hotel,
	destinationRepo repository.Destination,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:            repo,
		destinationRepo: destinationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) save(ctx context.Context, cacheKey string, value any) {
	if err := s.cache.Save(ctx, cacheKey, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to save to cache")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotels, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	hotels, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	page := gDto.Paginate(hotels, params)
	res.FromModels(page, len(hotels), params.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, strconv.Itoa(id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotels, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	for _, hotel := range hotels {
		if hotel.ID != id {
			continue
		}

		res.FromModel(hotel)
		s.save(ctx, cacheKey, res)

		return res, nil
	}

	return res, failure.NotFound("hotel not found") // nolint:wrapcheck
}

// Search matches the city case-insensitively as a substring, the way
// the search box matches while typing.
func (s *serviceImpl) Search(ctx context.Context, city string, params gDto.QueryParams) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchHotels")
	defer scope.End()
	defer scope.TraceIfError(err)

	needle := strings.ToLower(strings.TrimSpace(city))
	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchHotels, params, needle)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel search")

		return res, nil
	}

	hotels, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	matched := make([]model.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if needle == "" || strings.Contains(strings.ToLower(hotel.City), needle) {
			matched = append(matched, hotel)
		}
	}

	page := gDto.Paginate(matched, params)
	res.FromModels(page, len(matched), params.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Destinations(ctx context.Context) (res []dto.DestinationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDestinations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetDestinations, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetDestinations).Msg("cache hit for destinations")

		return res, nil
	}

	destinations, err := s.destinationRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get destinations")

		return nil, fmt.Errorf("failed to get destinations: %w", err)
	}

	res = make([]dto.DestinationResponse, len(destinations))
	for i, destination := range destinations {
		res[i].FromModel(destination)
	}

	s.save(ctx, cacheGetDestinations, res)

	return res, nil
}
