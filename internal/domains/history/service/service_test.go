package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelease/infras/kvstore"
	"travelease/infras/otel/mocks"
	"travelease/internal/domains/history/model"
	historyRepo "travelease/internal/domains/history/repository"
	"travelease/internal/domains/history/service"
	userModel "travelease/internal/domains/user/model"
	userRepo "travelease/internal/domains/user/repository"
	gDto "travelease/shared/dto"
)

type fixture struct {
	svc         service.History
	repo        historyRepo.History
	sessionRepo userRepo.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := kvstore.NewMemoryStore()
	mockOtel := mocks.NewOtel()

	repo := historyRepo.New(store, mockOtel)
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

func TestHistoryService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("silent no-op without a session", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Append(ctx, service.AppendRequest{
			Type:    model.TypeHotelBooking,
			HotelID: 1,
			Details: "Booked Deluxe Room at Grand Luxury Hotel",
		})
		require.NoError(t, err)

		entries, err := f.repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("records the active user and details", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 1)

		err := f.svc.Append(ctx, service.AppendRequest{
			Type:      model.TypeHotelBooking,
			BookingID: 5,
			HotelID:   1,
			Details:   "Booked Deluxe Room at Grand Luxury Hotel",
		})
		require.NoError(t, err)

		entries, err := f.repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, 1, entry.ID)
		assert.Equal(t, model.TypeHotelBooking, entry.Type)
		assert.Equal(t, 1, entry.UserID)
		assert.Equal(t, 5, entry.BookingID)
		assert.Equal(t, "Booked Deluxe Room at Grand Luxury Hotel", entry.Details)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("entries only accumulate", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 1)

		for i := 0; i < 3; i++ {
			err := f.svc.Append(ctx, service.AppendRequest{
				Type:    model.TypeBookingCancelled,
				HotelID: i + 1,
				Details: "Cancelled booking at Beach Paradise Resort",
			})
			require.NoError(t, err)
		}

		entries, err := f.repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{entries[0].ID, entries[1].ID, entries[2].ID})
	})
}

func TestHistoryService_GetUserHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("empty without a session", func(t *testing.T) {
		f := newFixture(t)

		entries, err := f.svc.GetUserHistory(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("filters by the active user", func(t *testing.T) {
		f := newFixture(t)

		f.login(t, 1)
		require.NoError(t, f.svc.Append(ctx, service.AppendRequest{
			Type:    model.TypeHotelBooking,
			HotelID: 1,
			Details: "Booked Deluxe Room at Grand Luxury Hotel",
		}))

		f.login(t, 2)
		require.NoError(t, f.svc.Append(ctx, service.AppendRequest{
			Type:    model.TypeHotelBooking,
			HotelID: 2,
			Details: "Booked Standard Room at Beach Paradise Resort",
		}))

		f.login(t, 1)
		mine, err := f.svc.GetUserHistory(ctx)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, 1, mine[0].HotelID)
	})
}

func TestHistoryService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("paginates across users", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 1)

		for i := 0; i < 3; i++ {
			require.NoError(t, f.svc.Append(ctx, service.AppendRequest{
				Type:    model.TypeHotelBooking,
				HotelID: i + 1,
				Details: "Booked Deluxe Room at Grand Luxury Hotel",
			}))
		}

		res, err := f.svc.GetAll(ctx, gDto.QueryParams{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Entries, 1)
		assert.Equal(t, 3, res.Entries[0].ID)
	})
}
