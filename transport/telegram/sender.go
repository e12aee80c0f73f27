package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"gipnoze/internal/messenger"
)

// Sender renders transport-neutral messages into Bot API calls. The chat API
// client has no context support; ctx is accepted for the interface and the
// call itself is synchronous.
type Sender struct {
	api *tgbotapi.BotAPI
}

func NewSender(api *tgbotapi.BotAPI) *Sender {
	return &Sender{api: api}
}

var _ messenger.Messenger = (*Sender)(nil)

func (s *Sender) SendText(_ context.Context, chatID int64, text string) error {
	if _, err := s.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *Sender) SendInline(_ context.Context, chatID int64, text string, rows [][]messenger.Button) error {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Token))
		}

		keyboard = append(keyboard, buttons)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(keyboard...)

	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send inline keyboard: %w", err)
	}

	return nil
}

func (s *Sender) SendMenu(_ context.Context, chatID int64, text string, rows [][]string) error {
	keyboard := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}

		keyboard = append(keyboard, buttons)
	}

	markup := tgbotapi.NewReplyKeyboard(keyboard...)
	markup.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup

	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send menu: %w", err)
	}

	return nil
}

func (s *Sender) EditText(_ context.Context, chatID int64, messageID int, text string) error {
	if _, err := s.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}
