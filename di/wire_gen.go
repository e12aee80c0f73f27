// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"gipnoze/config"
	"gipnoze/infras/otel"
	"gipnoze/infras/postgres"
	"gipnoze/infras/redis"
	telegram2 "gipnoze/infras/telegram"
	"gipnoze/internal/domains/booking/repository"
	"gipnoze/internal/domains/booking/service"
	repository2 "gipnoze/internal/domains/profile/repository"
	service2 "gipnoze/internal/domains/profile/service"
	repository3 "gipnoze/internal/domains/review/repository"
	service3 "gipnoze/internal/domains/review/service"
	"gipnoze/internal/handlers/dialog"
	"gipnoze/internal/handlers/moderation"
	"gipnoze/internal/messenger"
	"gipnoze/internal/notifier"
	"gipnoze/internal/session"
	"gipnoze/shared/cache"
	"gipnoze/transport/telegram"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *telegram.Bot {
	configConfig := config.Get()
	botAPI := telegram2.New(configConfig)
	sender := telegram.NewSender(botAPI)
	store := session.NewStore()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	booking := repository.New(connection, otelOtel)
	serviceBooking := service.New(booking, configConfig, otelOtel)
	contactProfile := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceContactProfile := service2.New(contactProfile, configConfig, redisCache, otelOtel)
	review := repository3.New(connection, otelOtel)
	serviceReview := service3.New(review, otelOtel)
	notifierNotifier := notifier.New(sender, configConfig)
	handler := dialog.New(store, serviceBooking, serviceContactProfile, serviceReview, notifierNotifier, sender, configConfig)
	moderationHandler := moderation.New(serviceBooking, notifierNotifier, sender)
	domainHandlers := telegram.DomainHandlers{
		Dialog:     handler,
		Moderation: moderationHandler,
	}
	bot := telegram.NewBot(botAPI, sender, domainHandlers, configConfig)
	return bot
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, telegram2.New)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var bookingDomain = wire.NewSet(repository.New, service.New)

var profileDomain = wire.NewSet(repository2.New, service2.New)

var reviewDomain = wire.NewSet(repository3.New, service3.New)

var domains = wire.NewSet(
	bookingDomain,
	profileDomain,
	reviewDomain,
)

var messaging = wire.NewSet(telegram.NewSender, wire.Bind(new(messenger.Messenger), new(*telegram.Sender)), notifier.New, session.NewStore)

var routing = wire.NewSet(wire.Struct(new(telegram.DomainHandlers), "*"), dialog.New, moderation.New, telegram.NewBot)
