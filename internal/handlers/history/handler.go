package history

import (
	"net/http"
	"travelease/infras/otel"
	"travelease/internal/domains/history/service"
	"travelease/shared/constant"
	gDto "travelease/shared/dto"
	"travelease/transport/http/middleware"
	"travelease/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.History
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.History, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/history", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)
		routerGroup.Get("/", handler.GetUserHistory)
		routerGroup.Get("/all", handler.GetAll)
	})
}

// GetUserHistory lists the active user's travel history
// @Summary List my travel history
// @Tags History
// @Produce json
// @Success 200 {object} response.Data[[]dto.EntryResponse] "History entries"
// @Failure 500 {object} response.Error
// @Router /v1/history [get]
// @Security BearerAuth
func (handler *Handler) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserHistory")
	defer scope.End()

	res, err := handler.service.GetUserHistory(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAll lists all history entries with pagination
// @Summary List all history entries
// @Tags History
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.GetEntriesResponse] "History page"
// @Failure 500 {object} response.Error
// @Router /v1/history/all [get]
// @Security BearerAuth
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllHistory")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get history entries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
