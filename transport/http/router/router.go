package router

import (
	"travelease/internal/handlers/auth"
	"travelease/internal/handlers/booking"
	"travelease/internal/handlers/history"
	"travelease/internal/handlers/hotel"
	"travelease/internal/handlers/user"
	"travelease/internal/handlers/wishlist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Hotel    hotel.Handler
	Booking  booking.Handler
	Wishlist wishlist.Handler
	History  history.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Wishlist.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
