package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelease/infras/kvstore"
	"travelease/infras/otel/mocks"
	userModel "travelease/internal/domains/user/model"
	userRepo "travelease/internal/domains/user/repository"
	"travelease/internal/domains/wishlist/model/dto"
	wishlistRepo "travelease/internal/domains/wishlist/repository"
	"travelease/internal/domains/wishlist/service"
	"travelease/shared/failure"
)

type fixture struct {
	svc         service.Wishlist
	repo        wishlistRepo.Wishlist
	sessionRepo userRepo.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := kvstore.NewMemoryStore()
	mockOtel := mocks.NewOtel()

	repo := wishlistRepo.New(store, mockOtel)
	sessions := userRepo.NewSession(store, mockOtel)

	return &fixture{
		svc:         service.New(repo, sessions, mockOtel),
		repo:        repo,
		sessionRepo: sessions,
	}
}

func (f *fixture) login(t *testing.T, id int) {
	t.Helper()

	require.NoError(t, f.sessionRepo.Put(context.Background(), userModel.Session{
		UserID:     id,
		Name:       "Test User",
		Email:      "user@x.com",
		LoggedInAt: time.Now(),
	}))
}

func TestWishlistService_IsInWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("always false without a session", func(t *testing.T) {
		f := newFixture(t)

		wishlisted, err := f.svc.IsInWishlist(ctx, 7)
		require.NoError(t, err)
		assert.False(t, wishlisted)
	})

	t.Run("true only for the saving user", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 1)

		_, err := f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		wishlisted, err := f.svc.IsInWishlist(ctx, 7)
		require.NoError(t, err)
		assert.True(t, wishlisted)

		f.login(t, 2)
		wishlisted, err = f.svc.IsInWishlist(ctx, 7)
		require.NoError(t, err)
		assert.False(t, wishlisted)
	})
}

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthorized without a session", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))
	})

	t.Run("second add for the same hotel conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 1)

		_, err := f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		_, err = f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusConflict))

		entries, err := f.repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("different users may save the same hotel", func(t *testing.T) {
		f := newFixture(t)

		f.login(t, 1)
		_, err := f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		f.login(t, 2)
		_, err = f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		entries, err := f.repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}

func TestWishlistService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthorized without a session", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Remove(ctx, 7)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))
	})

	t.Run("removes only the active user's entry", func(t *testing.T) {
		f := newFixture(t)

		f.login(t, 1)
		_, err := f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		f.login(t, 2)
		_, err = f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 7, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		require.NoError(t, f.svc.Remove(ctx, 7))

		entries, err := f.repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].UserID)
	})

	t.Run("removing an absent hotel is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 1)

		assert.NoError(t, f.svc.Remove(ctx, 99))
	})
}

func TestWishlistService_GetUserWishlist(t *testing.T) {
	ctx := context.Background()

	t.Run("empty without a session", func(t *testing.T) {
		f := newFixture(t)

		entries, err := f.svc.GetUserWishlist(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("filters by the active user", func(t *testing.T) {
		f := newFixture(t)

		f.login(t, 1)
		_, err := f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 1, HotelName: "Grand Luxury Hotel"})
		require.NoError(t, err)
		_, err = f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 2, HotelName: "Beach Paradise Resort"})
		require.NoError(t, err)

		f.login(t, 2)
		_, err = f.svc.Add(ctx, dto.AddWishlistRequest{HotelID: 3, HotelName: "Mountain Retreat Lodge"})
		require.NoError(t, err)

		f.login(t, 1)
		mine, err := f.svc.GetUserWishlist(ctx)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, 1, mine[0].HotelID)
		assert.Equal(t, 2, mine[1].HotelID)
	})
}
