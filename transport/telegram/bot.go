// Package telegram is the long-poll transport: it pulls updates from the Bot
// API, flattens them into transport-neutral events, and routes them to the
// dialog and moderation handlers.
package telegram

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"gipnoze/config"
	infraTelegram "gipnoze/infras/telegram"
	"gipnoze/internal/command"
	"gipnoze/internal/handlers/dialog"
	"gipnoze/internal/handlers/moderation"
	"gipnoze/internal/messenger"
)

type DomainHandlers struct {
	Dialog     *dialog.Handler
	Moderation *moderation.Handler
}

type Bot struct {
	api      *tgbotapi.BotAPI
	sender   *Sender
	handlers DomainHandlers
	cfg      *config.Config
}

func NewBot(api *tgbotapi.BotAPI, sender *Sender, handlers DomainHandlers, cfg *config.Config) *Bot {
	return &Bot{
		api:      api,
		sender:   sender,
		handlers: handlers,
		cfg:      cfg,
	}
}

// Run polls for updates until the process is signalled. Each update is
// handled on its own goroutine; ordering per guest comes from the session
// store's per-user lock, so slow I/O for one guest never stalls another.
func (b *Bot) Run() {
	b.setupGracefulShutdown()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = infraTelegram.PollTimeout(b.cfg)

	updates := b.api.GetUpdatesChan(updateConfig)

	log.Info().Str("username", b.api.Self.UserName).Msg("Bot started, polling for updates.")

	for update := range updates {
		go b.dispatch(context.Background(), update)
	}
}

func (b *Bot) setupGracefulShutdown() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop

		log.Info().Msg("Shutting down, stopping update polling.")
		b.api.StopReceivingUpdates()
	}()
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("recovered from panic while handling update")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.dispatchCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil:
		m := update.Message
		b.handlers.Dialog.HandleMessage(ctx, messenger.Update{
			UserID:   m.From.ID,
			ChatID:   m.Chat.ID,
			Nickname: m.From.UserName,
			Text:     m.Text,
		})
	}
}

func (b *Bot) dispatchCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// stop the client-side spinner regardless of outcome
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.Warn().Err(err).Msg("failed to answer callback query")
	}

	if cq.Message == nil {
		log.Warn().Str("data", cq.Data).Msg("callback without source message, dropping")

		return
	}

	upd := messenger.Update{
		UserID:    cq.From.ID,
		ChatID:    cq.Message.Chat.ID,
		Nickname:  cq.From.UserName,
		Token:     cq.Data,
		MessageID: cq.Message.MessageID,
		Callback:  true,
	}

	cmd, err := command.Parse(cq.Data)
	if err != nil {
		log.Warn().Err(err).Str("data", cq.Data).Msg("unroutable callback token")

		if err := b.sender.EditText(ctx, upd.ChatID, upd.MessageID, "Невірний формат запиту. Спробуйте ще раз або зверніться до розробника."); err != nil {
			log.Error().Err(err).Msg("failed to report malformed token")
		}

		return
	}

	if cmd.Action.IsModeration() {
		b.handlers.Moderation.Handle(ctx, upd, cmd)

		return
	}

	b.handlers.Dialog.HandleCallback(ctx, upd, cmd)
}
