//go:build wireinject
// +build wireinject

package di

import (
	"gipnoze/config"
	"gipnoze/infras/otel"
	"gipnoze/infras/postgres"
	"gipnoze/infras/redis"
	infraTelegram "gipnoze/infras/telegram"
	"gipnoze/internal/messenger"
	"gipnoze/internal/notifier"
	"gipnoze/internal/session"
	"gipnoze/shared/cache"
	"gipnoze/transport/telegram"

	bookingRepository "gipnoze/internal/domains/booking/repository"
	bookingService "gipnoze/internal/domains/booking/service"
	profileRepository "gipnoze/internal/domains/profile/repository"
	profileService "gipnoze/internal/domains/profile/service"
	reviewRepository "gipnoze/internal/domains/review/repository"
	reviewService "gipnoze/internal/domains/review/service"

	dialogHandler "gipnoze/internal/handlers/dialog"
	moderationHandler "gipnoze/internal/handlers/moderation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	infraTelegram.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var profileDomain = wire.NewSet(
	profileRepository.New,
	profileService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	profileDomain,
	reviewDomain,
)

var messaging = wire.NewSet(
	telegram.NewSender,
	wire.Bind(new(messenger.Messenger), new(*telegram.Sender)),
	notifier.New,
	session.NewStore,
)

var routing = wire.NewSet(
	wire.Struct(new(telegram.DomainHandlers), "*"),
	dialogHandler.New,
	moderationHandler.New,
	telegram.NewBot,
)

func InitializeService() *telegram.Bot {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		messaging,
		routing,
	)

	return &telegram.Bot{}
}
