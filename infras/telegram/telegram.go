package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"gipnoze/config"
)

const defaultPollTimeoutSeconds = 60

// New authorizes the bot against the Telegram API.
func New(config *config.Config) *tgbotapi.BotAPI {
	bot, err := tgbotapi.NewBotAPI(config.Telegram.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to authorize Telegram bot")
	}

	log.Info().
		Str("username", bot.Self.UserName).
		Msg("Authorized Telegram bot")

	return bot
}

// PollTimeout returns the long-poll timeout in seconds.
func PollTimeout(config *config.Config) int {
	if config.Telegram.PollTimeout > 0 {
		return config.Telegram.PollTimeout
	}

	return defaultPollTimeoutSeconds
}
