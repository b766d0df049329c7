//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	billingService "lodge/internal/domains/billing/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	customerRepository "lodge/internal/domains/customer/repository"
	paymentRepository "lodge/internal/domains/payment/repository"
	recordsRepository "lodge/internal/domains/records/repository"
	recordsService "lodge/internal/domains/records/service"
	roomTypeRepository "lodge/internal/domains/roomtype/repository"
	roomTypeService "lodge/internal/domains/roomtype/service"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	billingHandler "lodge/internal/handlers/billing"
	bookingHandler "lodge/internal/handlers/booking"
	paymentHandler "lodge/internal/handlers/payment"
	recordsHandler "lodge/internal/handlers/records"
	roomTypeHandler "lodge/internal/handlers/roomtype"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var billingDomain = wire.NewSet(
	billingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	customerRepository.New,
	paymentRepository.New,
	provideBookingService,
)

var recordsDomain = wire.NewSet(
	recordsRepository.New,
	recordsService.New,
)

var domains = wire.NewSet(
	roomTypeDomain,
	billingDomain,
	bookingDomain,
	recordsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomTypeHandler.New,
	bookingHandler.New,
	billingHandler.New,
	recordsHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
