package service

import (
	"context"
	"fmt"
	"travelease/infras/otel"
	"travelease/internal/domains/booking/model"
	"travelease/internal/domains/booking/model/dto"
	"travelease/internal/domains/booking/repository"
	historyModel "travelease/internal/domains/history/model"
	historyService "travelease/internal/domains/history/service"
	userRepo "travelease/internal/domains/user/repository"
	"travelease/internal/events"
	"travelease/shared/constant"
	gDto "travelease/shared/dto"
	"travelease/shared/failure"
	"travelease/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id int) (dto.BookingResponse, error)
	Get(ctx context.Context, id int) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context) ([]dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	sessionRepo userRepo.Session
	history     historyService.History
	publisher   events.Publisher
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	sessionRepo userRepo.Session,
	history historyService.History,
	publisher events.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		sessionRepo: sessionRepo,
		history:     history,
		publisher:   publisher,
		otel:        otel,
	}
}

// newBookingNumber builds the human-facing reference, a millisecond
// timestamp plus a short random suffix. The numeric id stays the unique
// key; the reference only needs to be readable on a confirmation page.
func newBookingNumber(now int64) string {
	return fmt.Sprintf("TE-%d-%s", now, uuid.NewString()[:8])
}

// Create books a stay for the active user. The owner fields are
// denormalized from the session and a hotel_booking history entry is
// appended in the same flow.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
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

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate booking id")

		return res, fmt.Errorf("failed to allocate booking id: %w", err)
	}

	now := timezone.Now()
	booking := model.Booking{
		ID:            id,
		BookingNumber: newBookingNumber(now.UnixMilli()),
		HotelID:       req.HotelID,
		HotelName:     req.HotelName,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Nights:        req.Nights,
		Guests:        req.Guests,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Total:         req.PricePerNight * float64(req.Nights),
		UserID:        session.UserID,
		UserName:      session.Name,
		UserEmail:     session.Email,
		Status:        model.StatusConfirmed,
		BookedAt:      now,
	}

	if err = s.repo.Append(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.history.Append(ctx, historyService.AppendRequest{
		Type:      historyModel.TypeHotelBooking,
		BookingID: booking.ID,
		HotelID:   booking.HotelID,
		Details:   fmt.Sprintf("Booked %s at %s", booking.RoomType, booking.HotelName),
	}); err != nil {
		log.Error().Err(err).Int("bookingID", booking.ID).Msg("failed to append booking history")

		return res, fmt.Errorf("failed to append booking history: %w", err)
	}

	s.publish(ctx, events.BookingEvent{
		Type:          events.TypeBookingCreated,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		HotelID:       booking.HotelID,
		UserID:        booking.UserID,
		OccurredAt:    now,
	})

	log.Info().Int("id", booking.ID).Str("bookingNumber", booking.BookingNumber).Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

// Cancel flips the booking to cancelled and stamps the time. Cancelling
// an already cancelled booking changes nothing and appends no history.
func (s *serviceImpl) Cancel(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	index := -1
	for i, booking := range bookings {
		if booking.ID == id {
			index = i

			break
		}
	}

	if index < 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if bookings[index].Status == model.StatusCancelled {
		res.FromModel(bookings[index])

		return res, nil
	}

	now := timezone.Now()
	bookings[index].Status = model.StatusCancelled
	bookings[index].CancelledAt = &now

	if err = s.repo.ReplaceAll(ctx, bookings); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	// Best-effort: no-ops without a session.
	if err = s.history.Append(ctx, historyService.AppendRequest{
		Type:      historyModel.TypeBookingCancelled,
		BookingID: bookings[index].ID,
		HotelID:   bookings[index].HotelID,
		Details:   fmt.Sprintf("Cancelled booking at %s", bookings[index].HotelName),
	}); err != nil {
		log.Error().Err(err).Int("bookingID", id).Msg("failed to append cancellation history")

		return res, fmt.Errorf("failed to append cancellation history: %w", err)
	}

	s.publish(ctx, events.BookingEvent{
		Type:          events.TypeBookingCancelled,
		BookingID:     bookings[index].ID,
		BookingNumber: bookings[index].BookingNumber,
		HotelID:       bookings[index].HotelID,
		UserID:        bookings[index].UserID,
		OccurredAt:    now,
	})

	log.Info().Int("id", id).Msg("booking cancelled")

	res.FromModel(bookings[index])

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, event events.BookingEvent) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	for _, booking := range bookings {
		if booking.ID == id {
			res.FromModel(booking)

			return res, nil
		}
	}

	return res, failure.NotFound("booking not found") // nolint:wrapcheck
}

// GetUserBookings lists the active user's bookings, newest first.
func (s *serviceImpl) GetUserBookings(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	session, ok, err := s.sessionRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if !ok {
		return nil, failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = []dto.BookingResponse{}

	for i := len(bookings) - 1; i >= 0; i-- {
		if bookings[i].UserID != session.UserID {
			continue
		}

		var item dto.BookingResponse
		item.FromModel(bookings[i])
		res = append(res, item)
	}

	return res, nil
}

// GetAll lists every booking, paginated, for administrative views.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	page := gDto.Paginate(bookings, params)
	res.FromModels(page, len(bookings), params.Limit)

	return res, nil
}
