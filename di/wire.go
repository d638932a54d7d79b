//go:build wireinject
// +build wireinject

package di

import (
	"travelease/config"
	"travelease/infras/jwt"
	"travelease/infras/kvstore"
	"travelease/infras/otel"
	"travelease/infras/redis"
	"travelease/internal/events"
	"travelease/internal/seed"
	"travelease/shared/cache"
	"travelease/transport/http"
	"travelease/transport/http/middleware"
	"travelease/transport/http/router"

	bookingRepository "travelease/internal/domains/booking/repository"
	bookingService "travelease/internal/domains/booking/service"
	historyRepository "travelease/internal/domains/history/repository"
	historyService "travelease/internal/domains/history/service"
	hotelRepository "travelease/internal/domains/hotel/repository"
	hotelService "travelease/internal/domains/hotel/service"
	userRepository "travelease/internal/domains/user/repository"
	userService "travelease/internal/domains/user/service"
	wishlistRepository "travelease/internal/domains/wishlist/repository"
	wishlistService "travelease/internal/domains/wishlist/service"

	authHandler "travelease/internal/handlers/auth"
	bookingHandler "travelease/internal/handlers/booking"
	historyHandler "travelease/internal/handlers/history"
	hotelHandler "travelease/internal/handlers/hotel"
	userHandler "travelease/internal/handlers/user"
	wishlistHandler "travelease/internal/handlers/wishlist"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kvstore.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewSession,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelRepository.NewDestination,
	hotelService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	events.New,
)

var wishlistDomain = wire.NewSet(
	wishlistRepository.New,
	wishlistService.New,
)

var historyDomain = wire.NewSet(
	historyRepository.New,
	historyService.New,
)

var domains = wire.NewSet(
	userDomain,
	hotelDomain,
	bookingDomain,
	wishlistDomain,
	historyDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	bookingHandler.New,
	wishlistHandler.New,
	historyHandler.New,
	router.New,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		seed.New,
		wire.Struct(new(Service), "*"),
	)

	return &Service{}
}
