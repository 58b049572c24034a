//go:build wireinject
// +build wireinject

package di

import (
	"alora/config"
	"alora/infras/jwt"
	"alora/infras/kafka"
	"alora/infras/mail"
	"alora/infras/otel"
	"alora/infras/postgres"
	"alora/infras/redis"
	"alora/infras/s3"
	authService "alora/internal/domains/auth/service"
	bookingRepository "alora/internal/domains/booking/repository"
	bookingService "alora/internal/domains/booking/service"
	contactRepository "alora/internal/domains/contact/repository"
	contactService "alora/internal/domains/contact/service"
	exportService "alora/internal/domains/export/service"
	userRepository "alora/internal/domains/user/repository"
	userService "alora/internal/domains/user/service"
	authHandler "alora/internal/handlers/auth"
	bookingHandler "alora/internal/handlers/booking"
	contactHandler "alora/internal/handlers/contact"
	exportHandler "alora/internal/handlers/export"
	pageHandler "alora/internal/handlers/page"
	testHandler "alora/internal/handlers/test"
	"alora/internal/jobs"
	"alora/permissions"
	"alora/shared/cache"
	"alora/transport/http"
	"alora/transport/http/middleware"
	"alora/transport/http/router"
	"alora/web"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	web.MustNewRenderer,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var exportDomain = wire.NewSet(
	exportService.New,
	jobs.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	contactDomain,
	exportDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	contactHandler.New,
	exportHandler.New,
	pageHandler.New,
	testHandler.New,
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

func InitializeAdmin() userService.User {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		userRepository.New,
		userService.New,
	)

	return nil
}
