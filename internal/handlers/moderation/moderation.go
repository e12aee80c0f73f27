// Package moderation handles the admin-side buttons: confirming, rejecting,
// and force-cancelling bookings. Every outcome is answered by editing the
// message that carried the button, so a tapped card always shows its result.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"gipnoze/internal/command"
	"gipnoze/internal/domains/booking/service"
	"gipnoze/internal/messenger"
	"gipnoze/internal/notifier"
	"gipnoze/shared/failure"
)

type Handler struct {
	bookings service.Booking
	notifier notifier.Notifier
	msg      messenger.Messenger
}

func New(bookings service.Booking, notifier notifier.Notifier, msg messenger.Messenger) *Handler {
	return &Handler{
		bookings: bookings,
		notifier: notifier,
		msg:      msg,
	}
}

// Handle applies one moderation token. Authorization and status eligibility
// are enforced by the booking service; this layer only renders the outcome
// and fires the follow-up notifications.
func (h *Handler) Handle(ctx context.Context, upd messenger.Update, cmd command.Command) {
	switch cmd.Action {
	case command.ActionConfirm:
		booking, err := h.bookings.Confirm(ctx, upd.UserID, cmd.Payload)
		if err != nil {
			h.editFailure(ctx, upd, err)

			return
		}

		h.edit(ctx, upd, "✅ Підтверджено:\n\n"+notifier.FormatBooking(booking))
		h.notifier.BookingConfirmed(ctx, booking)
	case command.ActionReject:
		booking, err := h.bookings.Reject(ctx, upd.UserID, cmd.Payload)
		if err != nil {
			h.editFailure(ctx, upd, err)

			return
		}

		h.edit(ctx, upd, "❌ Відхилено:\n\n"+notifier.FormatBooking(booking))
		h.notifier.BookingRejected(ctx, booking)
	case command.ActionForceCancel:
		booking, err := h.bookings.ForceCancel(ctx, upd.UserID, cmd.Payload)
		if err != nil {
			h.editFailure(ctx, upd, err)

			return
		}

		h.edit(ctx, upd, fmt.Sprintf(
			"✅ Бронювання на %s о %s для %s скасовано адміністратором.",
			booking.Date, booking.Slot, booking.Name))
		h.notifier.BookingCancelledByAdmin(ctx, booking)
	default:
		h.edit(ctx, upd, "Невірний формат запиту. Спробуйте ще раз або зверніться до розробника.")
	}
}

func (h *Handler) editFailure(ctx context.Context, upd messenger.Update, err error) {
	var already *service.AlreadyFinalized

	switch {
	case errors.As(err, &already):
		h.edit(ctx, upd, fmt.Sprintf("Ця бронь вже '%s'.", already.Status.Label()))
	case failure.IsCode(err, http.StatusUnauthorized):
		h.edit(ctx, upd, "Ви не маєте прав для виконання цієї дії.")
	case failure.IsNotFound(err):
		h.edit(ctx, upd, "Бронювання не знайдено або вже видалено.")
	default:
		h.edit(ctx, upd, "Виникла помилка. Будь ласка, спробуйте пізніше.")
	}
}

func (h *Handler) edit(ctx context.Context, upd messenger.Update, text string) {
	if err := h.msg.EditText(ctx, upd.ChatID, upd.MessageID, text); err != nil {
		log.Error().Err(err).Int64("chatID", upd.ChatID).Msg("failed to edit message")
	}
}
