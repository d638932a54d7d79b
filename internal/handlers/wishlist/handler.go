package wishlist

import (
	"net/http"
	"strconv"
	"travelease/infras/otel"
	"travelease/internal/domains/wishlist/model/dto"
	"travelease/internal/domains/wishlist/service"
	"travelease/shared/constant"
	"travelease/shared/failure"
	"travelease/shared/validator"
	"travelease/transport/http/middleware"
	"travelease/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wishlist
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Wishlist, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wishlist", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)
		routerGroup.Get("/", handler.GetUserWishlist)
		routerGroup.Post("/", handler.Add)
		routerGroup.Delete("/{hotelId}", handler.Remove)
		routerGroup.Get("/contains/{hotelId}", handler.Contains)
	})
}

// GetUserWishlist lists the active user's wishlist
// @Summary List wishlist
// @Tags Wishlist
// @Produce json
// @Success 200 {object} response.Data[[]dto.EntryResponse] "Wishlist entries"
// @Failure 500 {object} response.Error
// @Router /v1/wishlist [get]
// @Security BearerAuth
func (handler *Handler) GetUserWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserWishlist")
	defer scope.End()

	res, err := handler.service.GetUserWishlist(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wishlist")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Add puts a hotel on the active user's wishlist
// @Summary Add to wishlist
// @Tags Wishlist
// @Accept json
// @Produce json
// @Param request body dto.AddWishlistRequest true "Wishlist Request"
// @Success 201 {object} response.Data[dto.EntryResponse] "Created entry"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/wishlist [post]
// @Security BearerAuth
func (handler *Handler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddWishlist")
	defer scope.End()

	req := dto.AddWishlistRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Add(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add to wishlist")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel added to wishlist")

	response.WithJSON(w, http.StatusCreated, res)
}

// Remove takes a hotel off the active user's wishlist
// @Summary Remove from wishlist
// @Tags Wishlist
// @Produce json
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} response.Message "Removed from wishlist"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/wishlist/{hotelId} [delete]
// @Security BearerAuth
func (handler *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveWishlist")
	defer scope.End()

	hotelID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	if err := handler.service.Remove(ctx, hotelID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove from wishlist")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Removed from wishlist")
}

// Contains reports whether a hotel is on the active user's wishlist
// @Summary Check wishlist membership
// @Tags Wishlist
// @Produce json
// @Param hotelId path int true "Hotel ID"
// @Success 200 {object} response.Data[dto.ContainsResponse] "Membership flag"
// @Failure 400 {object} response.Error
// @Router /v1/wishlist/contains/{hotelId} [get]
// @Security BearerAuth
func (handler *Handler) Contains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ContainsWishlist")
	defer scope.End()

	hotelID, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	wishlisted, err := handler.service.IsInWishlist(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check wishlist")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.ContainsResponse{HotelID: hotelID, Wishlisted: wishlisted})
}
