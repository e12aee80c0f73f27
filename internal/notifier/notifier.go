// Package notifier delivers booking lifecycle messages to the guest, the
// admin, and the broadcast group. Delivery is best effort: a failed send is
// logged and never rolls back the transition it reports.
package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"gipnoze/config"
	"gipnoze/internal/command"
	"gipnoze/internal/domains/booking/model"
	reviewModel "gipnoze/internal/domains/review/model"
	"gipnoze/internal/messenger"
)

// Notifier routes lifecycle events. BookingSubmitted returns its error so the
// dialog can offer the admin's phone as a fallback; the rest are best effort.
type Notifier interface {
	BookingSubmitted(ctx context.Context, booking model.Booking) error
	BookingConfirmed(ctx context.Context, booking model.Booking)
	BookingRejected(ctx context.Context, booking model.Booking)
	BookingCancelledByAdmin(ctx context.Context, booking model.Booking)
	BookingCancelledByGuest(ctx context.Context, booking model.Booking)
	ReviewSubmitted(ctx context.Context, review reviewModel.Review, nickname string)
}

type notifierImpl struct {
	msg messenger.Messenger
	cfg *config.Config
}

func New(msg messenger.Messenger, cfg *config.Config) Notifier {
	return &notifierImpl{
		msg: msg,
		cfg: cfg,
	}
}

// FormatBooking renders the summary shown to the admin and the broadcast
// group.
func FormatBooking(booking model.Booking) string {
	return fmt.Sprintf(
		"📅 Нове бронювання:\n"+
			"Ім'я: %s\n"+
			"Дата: %s\n"+
			"Час: %s\n"+
			"Гостей: %d\n"+
			"Місце: %s\n"+
			"Телефон: %s\n"+
			"Статус: %s",
		booking.Name, booking.Date, booking.Slot, booking.Guests,
		booking.Zone, booking.Contact, booking.Status.Label(),
	)
}

func (n *notifierImpl) BookingSubmitted(ctx context.Context, booking model.Booking) error {
	rows := [][]messenger.Button{{
		{Label: "✅ Підтвердити", Token: command.Encode(command.ActionConfirm, booking.ID)},
		{Label: "❌ Відхилити", Token: command.Encode(command.ActionReject, booking.ID)},
	}}

	if err := n.msg.SendInline(ctx, n.cfg.Telegram.AdminUserID, FormatBooking(booking), rows); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to notify admin about new booking")

		return fmt.Errorf("failed to notify admin: %w", err)
	}

	return nil
}

func (n *notifierImpl) BookingConfirmed(ctx context.Context, booking model.Booking) {
	n.send(ctx, booking.ChatID, "✅ Ваше бронювання підтверджено!")

	if n.cfg.Telegram.BroadcastChatID == 0 {
		return
	}

	text := fmt.Sprintf(
		"✅ Бронювання підтверджено:\n\n"+
			"Ім'я: %s\n"+
			"Телефон: %s\n"+
			"Дата: %s\n"+
			"Час: %s\n"+
			"Кабінка: %s\n"+
			"Гостей: %d",
		booking.Name, booking.Contact, booking.Date, booking.Slot,
		booking.Zone, booking.Guests,
	)
	n.send(ctx, n.cfg.Telegram.BroadcastChatID, text)
}

func (n *notifierImpl) BookingRejected(ctx context.Context, booking model.Booking) {
	n.send(ctx, booking.ChatID, "❌ Ваше бронювання було відхилено.")
}

func (n *notifierImpl) BookingCancelledByAdmin(ctx context.Context, booking model.Booking) {
	text := fmt.Sprintf(
		"❌ Ваше бронювання на %s о %s (Кабінка: %s) було скасовано адміністратором.",
		booking.Date, booking.Slot, booking.Zone,
	)
	n.send(ctx, booking.ChatID, text)
}

func (n *notifierImpl) BookingCancelledByGuest(ctx context.Context, booking model.Booking) {
	text := fmt.Sprintf(
		"❎ Гість скасував бронювання:\n\n%s",
		FormatBooking(booking),
	)
	n.send(ctx, n.cfg.Telegram.AdminUserID, text)
}

func (n *notifierImpl) ReviewSubmitted(ctx context.Context, review reviewModel.Review, nickname string) {
	who := nickname
	if who == "" {
		who = fmt.Sprintf("id %d", review.UserID)
	}

	text := fmt.Sprintf(
		"⭐ Новий відгук (%d/5) від %s:\n\n%s",
		review.Rating, who, review.Body,
	)
	n.send(ctx, n.cfg.Telegram.AdminUserID, text)
}

func (n *notifierImpl) send(ctx context.Context, chatID int64, text string) {
	if err := n.msg.SendText(ctx, chatID, text); err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Msg("failed to deliver notification")
	}
}
