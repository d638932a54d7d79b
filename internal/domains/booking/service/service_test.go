package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelease/infras/kvstore"
	"travelease/infras/otel/mocks"
	"travelease/internal/domains/booking/model/dto"
	bookingRepo "travelease/internal/domains/booking/repository"
	"travelease/internal/domains/booking/service"
	historyModel "travelease/internal/domains/history/model"
	historyRepo "travelease/internal/domains/history/repository"
	historyService "travelease/internal/domains/history/service"
	userModel "travelease/internal/domains/user/model"
	userRepo "travelease/internal/domains/user/repository"
	"travelease/internal/events"
	gDto "travelease/shared/dto"
	"travelease/shared/failure"
)

type fixture struct {
	svc         service.Booking
	bookings    bookingRepo.Booking
	history     historyRepo.History
	sessionRepo userRepo.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := kvstore.NewMemoryStore()
	mockOtel := mocks.NewOtel()

	bookings := bookingRepo.New(store, mockOtel)
	histories := historyRepo.New(store, mockOtel)
	sessions := userRepo.NewSession(store, mockOtel)
	historySvc := historyService.New(histories, sessions, mockOtel)

	return &fixture{
		svc:         service.New(bookings, sessions, historySvc, events.NewNoop(), mockOtel),
		bookings:    bookings,
		history:     histories,
		sessionRepo: sessions,
	}
}

func (f *fixture) login(t *testing.T, id int, name, email string) {
	t.Helper()

	require.NoError(t, f.sessionRepo.Put(context.Background(), userModel.Session{
		UserID:     id,
		Name:       name,
		Email:      email,
		LoggedInAt: time.Now(),
	}))
}

func deluxeRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelID:       1,
		HotelName:     "Grand Luxury Hotel",
		RoomType:      "Deluxe",
		PricePerNight: 100,
		Nights:        3,
		Guests:        2,
		CheckIn:       "2026-09-10",
		CheckOut:      "2026-09-13",
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("without a session nothing is persisted", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, deluxeRequest())
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))

		bookings, err := f.bookings.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, bookings)

		entries, err := f.history.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("denormalizes the session user and computes the total", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		res, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		assert.Equal(t, 1, res.ID)
		assert.Equal(t, "confirmed", res.Status)
		assert.Equal(t, float64(300), res.Total)
		assert.InDelta(t, 345.0, res.TotalWithTax, 0.001)
		assert.Equal(t, 7, res.UserID)
		assert.Equal(t, "Ada", res.UserName)
		assert.Equal(t, "ada@x.com", res.UserEmail)
		assert.True(t, strings.HasPrefix(res.BookingNumber, "TE-"))
	})

	t.Run("appends a hotel_booking history entry", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		res, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		entries, err := f.history.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, historyModel.TypeHotelBooking, entries[0].Type)
		assert.Equal(t, res.ID, entries[0].BookingID)
		assert.Equal(t, 7, entries[0].UserID)
		assert.Equal(t, "Booked Deluxe at Grand Luxury Hotel", entries[0].Details)
	})

	t.Run("rejects a stay that ends before it starts", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		req := deluxeRequest()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

		_, err := f.svc.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("flips status, stamps time and logs exactly one entry", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		created, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		res, err := f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", res.Status)
		assert.NotEmpty(t, res.CancelledAt)

		entries, err := f.history.GetAll(ctx)
		require.NoError(t, err)

		cancellations := 0
		for _, entry := range entries {
			if entry.Type == historyModel.TypeBookingCancelled {
				cancellations++
				assert.Equal(t, "Cancelled booking at Grand Luxury Hotel", entry.Details)
			}
		}
		assert.Equal(t, 1, cancellations)
	})

	t.Run("repeat cancellation is a no-op", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		created, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		first, err := f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)

		second, err := f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, first.CancelledAt, second.CancelledAt)

		entries, err := f.history.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 2, "one booking entry plus one cancellation entry")
	})

	t.Run("not found for an unknown id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Cancel(ctx, 99)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("cancelling without a session skips the history entry", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		created, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		require.NoError(t, f.sessionRepo.Clear(ctx))

		res, err := f.svc.Cancel(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", res.Status)

		entries, err := f.history.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "only the original booking entry")
	})
}

func TestBookingService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("Get finds by id", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		created, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		got, err := f.svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.BookingNumber, got.BookingNumber)

		_, err = f.svc.Get(ctx, 99)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("GetUserBookings returns only the active user's bookings", func(t *testing.T) {
		f := newFixture(t)

		f.login(t, 7, "Ada", "ada@x.com")
		_, err := f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		f.login(t, 8, "Grace", "grace@x.com")
		_, err = f.svc.Create(ctx, deluxeRequest())
		require.NoError(t, err)

		mine, err := f.svc.GetUserBookings(ctx)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, 8, mine[0].UserID)
	})

	t.Run("GetUserBookings requires a session", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetUserBookings(ctx)
		require.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusUnauthorized))
	})

	t.Run("GetAll paginates", func(t *testing.T) {
		f := newFixture(t)
		f.login(t, 7, "Ada", "ada@x.com")

		for range 3 {
			_, err := f.svc.Create(ctx, deluxeRequest())
			require.NoError(t, err)
		}

		res, err := f.svc.GetAll(ctx, gDto.QueryParams{Page: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, 3, res.Bookings[0].ID)
	})
}
