package hotel

import (
	"net/http"
	"strconv"
	"travelease/infras/otel"
	"travelease/internal/domains/hotel/service"
	"travelease/shared/constant"
	gDto "travelease/shared/dto"
	"travelease/shared/failure"
	"travelease/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAll)
		routerGroup.Get("/search", handler.Search)
		routerGroup.Get("/{id}", handler.Get)
	})
	router.Get("/destinations", handler.Destinations)
}

// GetAll lists hotels with pagination
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "Hotels page"
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Search finds hotels whose city matches the query
// @Summary Search hotels by city
// @Tags Hotel
// @Produce json
// @Param city query string false "City name, case insensitive substring"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.GetHotelsResponse] "Matching hotels"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/search [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHotels")
	defer scope.End()

	city := r.URL.Query().Get(constant.RequestParamCity)

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.Search(ctx, city, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns a single hotel by id
// @Summary Get a hotel
// @Tags Hotel
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid hotel id"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Destinations lists popular destinations
// @Summary List destinations
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[[]dto.DestinationResponse] "Destinations"
// @Failure 500 {object} response.Error
// @Router /v1/destinations [get]
func (handler *Handler) Destinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	res, err := handler.service.Destinations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
