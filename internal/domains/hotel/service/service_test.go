package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"travelease/config"
	"travelease/infras/kvstore"
	"travelease/infras/otel/mocks"
	"travelease/internal/domains/hotel/model"
	"travelease/internal/domains/hotel/model/dto"
	"travelease/internal/domains/hotel/repository"
	"travelease/internal/domains/hotel/service"
	cacheMocks "travelease/shared/cache/mocks"
	gDto "travelease/shared/dto"
	"travelease/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func catalog() []model.Hotel {
	return []model.Hotel{
		{ID: 1, Name: "Grand Luxury Hotel", City: "New York", Country: "USA", Price: 299},
		{ID: 2, Name: "Beach Paradise Resort", City: "Miami", Country: "USA", Price: 189},
		{ID: 3, Name: "Mountain Retreat Lodge", City: "Swiss Alps", Country: "Switzerland", Price: 349},
	}
}

func newService(t *testing.T) (service.Hotel, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := kvstore.NewMemoryStore()
	mockOtel := mocks.NewOtel()
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	repo := repository.New(store, mockOtel)
	destinationRepo := repository.NewDestination(store, mockOtel)

	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, catalog()))
	require.NoError(t, destinationRepo.ReplaceAll(ctx, []model.Destination{
		{ID: 1, Name: "New York", Country: "USA"},
		{ID: 2, Name: "Paris", Country: "France"},
	}))

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(repo, destinationRepo, cfg, mockCache, mockOtel), mockCache
}

func TestHotelService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss reads the catalog and saves it", func(t *testing.T) {
		svc, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

		res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		require.Len(t, res.Hotels, 3)
		assert.Equal(t, "Grand Luxury Hotel", res.Hotels[0].Name)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, mockCache := newService(t)

		cached := dto.GetHotelsResponse{TotalData: 1, TotalPage: 1, Hotels: []dto.HotelResponse{{ID: 42, Name: "Cached Hotel"}}}
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.GetHotelsResponse) = cached

				return nil
			})

		res, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})
}

func TestHotelService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "hotel:get:2", gomock.Any()).Return(errCacheMiss)
		mockCache.EXPECT().Save(gomock.Any(), "hotel:get:2", gomock.Any(), 60).Return(nil)

		res, err := svc.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Beach Paradise Resort", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)

		_, err := svc.Get(ctx, 99)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})
}

func TestHotelService_Search(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		city  string
		want  int
		first string
	}{
		{name: "exact city", city: "Miami", want: 1, first: "Beach Paradise Resort"},
		{name: "case-insensitive substring", city: "york", want: 1, first: "Grand Luxury Hotel"},
		{name: "empty query matches everything", city: "", want: 3, first: "Grand Luxury Hotel"},
		{name: "no match", city: "Atlantis", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockCache := newService(t)

			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
			mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

			res, err := svc.Search(ctx, tt.city, gDto.QueryParams{Page: 1, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.TotalData)

			if tt.want > 0 {
				assert.Equal(t, tt.first, res.Hotels[0].Name)
			}
		})
	}
}

func TestHotelService_Destinations(t *testing.T) {
	svc, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

	res, err := svc.Destinations(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Paris", res[1].Name)
}
