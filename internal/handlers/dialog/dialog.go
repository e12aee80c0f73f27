// Package dialog implements the guest conversation: the main menu, the
// booking flow from date to contact details, self-service cancellation, the
// review branch, and the admin's day view. Every typed message and every
// non-moderation button tap lands here.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"gipnoze/config"
	"gipnoze/internal/command"
	bookingDto "gipnoze/internal/domains/booking/model/dto"
	bookingService "gipnoze/internal/domains/booking/service"
	profileDto "gipnoze/internal/domains/profile/model/dto"
	profileService "gipnoze/internal/domains/profile/service"
	reviewDto "gipnoze/internal/domains/review/model/dto"
	reviewService "gipnoze/internal/domains/review/service"
	"gipnoze/internal/messenger"
	"gipnoze/internal/notifier"
	"gipnoze/internal/session"
	"gipnoze/internal/venue"
	"gipnoze/shared/failure"
)

const (
	menuBook         = "📅 Забронювати столик"
	menuMyBookings   = "🗒 Мої бронювання"
	menuReview       = "⭐ Залишити відгук"
	menuInstagram    = "📸 Instagram"
	menuAdminView    = "👀 Переглянути бронювання (адміну)"
	menuContactAdmin = "📞 Зв'язатися з адміном"

	msgDraftLost    = "Дані бронювання втрачені. Будь ласка, почніть бронювання знову."
	msgStartOver    = "Щось пішло не так. Будь ласка, почніть бронювання знову."
	msgAskDate      = "На яку дату ви хочете забронювати столик? (наприклад, 30.07.2025)"
	msgAskPhone     = "Ваш номер телефону? (наприклад, +380991234567)"
	msgAnythingElse = "Щось ще?"
	msgBadToken     = "Невірний формат запиту. Спробуйте ще раз або зверніться до розробника."
)

type Handler struct {
	sessions *session.Store
	bookings bookingService.Booking
	profiles profileService.ContactProfile
	reviews  reviewService.Review
	notifier notifier.Notifier
	msg      messenger.Messenger
	cfg      *config.Config
}

func New(
	sessions *session.Store,
	bookings bookingService.Booking,
	profiles profileService.ContactProfile,
	reviews reviewService.Review,
	notifier notifier.Notifier,
	msg messenger.Messenger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		sessions: sessions,
		bookings: bookings,
		profiles: profiles,
		reviews:  reviews,
		notifier: notifier,
		msg:      msg,
		cfg:      cfg,
	}
}

func menuRows() [][]string {
	return [][]string{
		{menuBook, menuMyBookings},
		{menuReview, menuInstagram},
		{menuAdminView, menuContactAdmin},
	}
}

// HandleMessage processes a typed message according to the sender's current
// dialog state. The whole step runs under the sender's session lock, so a
// burst of messages from one guest is applied strictly in order.
func (h *Handler) HandleMessage(ctx context.Context, upd messenger.Update) {
	text := strings.TrimSpace(upd.Text)

	if strings.HasPrefix(text, "/start") {
		h.sessions.Reset(upd.UserID)
		h.menu(ctx, upd.ChatID, "Привіт! Я бот для бронювання в кальянній.\nЩо бажаєш зробити?\n\nДля питань: "+h.cfg.Telegram.AdminPhone)

		return
	}

	if strings.HasPrefix(text, "/") {
		h.send(ctx, upd.ChatID, "Вибачте, я не розумію цієї команди. Будь ласка, скористайтесь меню.")

		return
	}

	h.sessions.Do(upd.UserID, func(draft *session.Draft) {
		switch draft.State {
		case session.StateChoosingAction:
			h.handleMenuChoice(ctx, upd, draft, text)
		case session.StateBookingDate:
			h.handleDate(ctx, upd, draft, text)
		case session.StateBookingGuests:
			h.handleGuests(ctx, upd, draft, text)
		case session.StateContactName:
			h.handleName(ctx, upd, draft, text)
		case session.StateContactPhone:
			h.handlePhone(ctx, upd, draft, text)
		case session.StateReviewText:
			h.handleReviewText(ctx, upd, draft, text)
		case session.StateAdminViewDate:
			h.handleAdminViewDate(ctx, upd, draft, text)
		case session.StateBookingTime:
			h.send(ctx, upd.ChatID, "Будь ласка, оберіть час кнопкою вище.")
		case session.StateBookingZone:
			h.send(ctx, upd.ChatID, "Будь ласка, оберіть місце кнопкою вище.")
		case session.StateSavedContact:
			h.send(ctx, upd.ChatID, "Будь ласка, скористайтесь кнопками вище.")
		default:
			draft.Reset()
			h.menu(ctx, upd.ChatID, "Будь ласка, оберіть дію з клавіатури.")
		}
	})
}

// HandleCallback processes a non-moderation button tap.
func (h *Handler) HandleCallback(ctx context.Context, upd messenger.Update, cmd command.Command) {
	if cmd.Action == command.ActionCancel {
		h.cancelOwn(ctx, upd, cmd.Payload)

		return
	}

	h.sessions.Do(upd.UserID, func(draft *session.Draft) {
		switch cmd.Action {
		case command.ActionTime:
			h.pickTime(ctx, upd, draft, cmd.Payload)
		case command.ActionZone:
			h.pickZone(ctx, upd, draft, cmd.Payload)
		case command.ActionSaved:
			h.answerSavedContact(ctx, upd, draft, cmd.Payload)
		case command.ActionRate:
			h.pickRating(ctx, upd, draft, cmd.Payload)
		case command.ActionSaveContact:
			h.answerSaveContact(ctx, upd, draft, cmd.Payload)
		default:
			h.edit(ctx, upd, msgBadToken)
		}
	})
}

func (h *Handler) handleMenuChoice(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	switch text {
	case menuBook:
		draft.Reset()
		h.startBooking(ctx, upd, draft)
	case menuMyBookings:
		h.listOwnBookings(ctx, upd)
	case menuReview:
		rows := [][]messenger.Button{make([]messenger.Button, 0, 5)}
		for rating := 1; rating <= 5; rating++ {
			rows[0] = append(rows[0], messenger.Button{
				Label: strconv.Itoa(rating),
				Token: command.Encode(command.ActionRate, strconv.Itoa(rating)),
			})
		}

		h.inline(ctx, upd.ChatID, "Оцініть нас від 1 до 5:", rows)
	case menuInstagram:
		h.menu(ctx, upd.ChatID, "Перейти на нашу сторінку Instagram: "+h.cfg.Telegram.InstagramURL)
	case menuContactAdmin:
		h.menu(ctx, upd.ChatID, "Номер телефону адміністратора: "+h.cfg.Telegram.AdminPhone)
	case menuAdminView:
		if upd.UserID != h.cfg.Telegram.AdminUserID {
			h.menu(ctx, upd.ChatID, "Ця функція тільки для адміністратора.")

			return
		}

		draft.State = session.StateAdminViewDate
		h.send(ctx, upd.ChatID, "На яку дату ви хочете переглянути бронювання? (наприклад, 30.07.2025)")
	default:
		h.menu(ctx, upd.ChatID, "Будь ласка, оберіть дію з клавіатури.")
	}
}

// startBooking opens the flow: returning guests with a remembered contact
// get the reuse offer first, everyone else goes straight to the date.
func (h *Handler) startBooking(ctx context.Context, upd messenger.Update, draft *session.Draft) {
	profile, err := h.profiles.Get(ctx, upd.UserID)
	if err == nil && profile.Name != "" && profile.Contact != "" {
		draft.Name = profile.Name
		draft.Contact = profile.Contact
		draft.State = session.StateSavedContact

		rows := [][]messenger.Button{{
			{Label: "✅ Так", Token: command.Encode(command.ActionSaved, "yes")},
			{Label: "✍️ Ввести заново", Token: command.Encode(command.ActionSaved, "no")},
		}}
		h.inline(ctx, upd.ChatID,
			fmt.Sprintf("У нас збережені ваші контакти: %s, %s. Використати їх?", profile.Name, profile.Contact),
			rows)

		return
	}

	if err != nil && !failure.IsNotFound(err) {
		log.Warn().Err(err).Int64("userID", upd.UserID).Msg("contact profile lookup failed, asking for contacts manually")
	}

	draft.State = session.StateBookingDate
	h.send(ctx, upd.ChatID, msgAskDate)
}

func (h *Handler) handleDate(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	date, err := venue.ParseBookingDate(text)
	if err != nil {
		h.send(ctx, upd.ChatID, err.Error())

		return
	}

	draft.Date = date
	draft.State = session.StateBookingTime

	h.inline(ctx, upd.ChatID, "Оберіть час:", timeKeyboard())
}

func timeKeyboard() [][]messenger.Button {
	slots := venue.TimeSlots()

	var rows [][]messenger.Button
	for i := 0; i < len(slots); i += 4 {
		end := min(i+4, len(slots))

		row := make([]messenger.Button, 0, 4)
		for _, slot := range slots[i:end] {
			row = append(row, messenger.Button{Label: slot, Token: command.Encode(command.ActionTime, slot)})
		}

		rows = append(rows, row)
	}

	return rows
}

func (h *Handler) pickTime(ctx context.Context, upd messenger.Update, draft *session.Draft, slot string) {
	if draft.State != session.StateBookingTime || draft.Date == "" || !venue.ValidSlot(slot) {
		draft.Reset()
		h.edit(ctx, upd, msgStartOver)
		h.menu(ctx, upd.ChatID, msgAnythingElse)

		return
	}

	draft.Slot = slot
	draft.State = session.StateBookingGuests

	h.edit(ctx, upd, fmt.Sprintf("Ви обрали %s. Тепер, скільки вас буде?", slot))
}

func (h *Handler) handleGuests(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	guests, err := strconv.Atoi(text)
	if err != nil {
		h.send(ctx, upd.ChatID, "Невірний формат. Будь ласка, введіть кількість гостей числом.")

		return
	}

	if !venue.ValidGuestCount(guests) {
		h.send(ctx, upd.ChatID, "Кількість гостей має бути позитивним числом. Будь ласка, введіть коректну кількість.")

		return
	}

	draft.Guests = guests

	zones, err := h.bookings.AvailableZones(ctx, draft.Date, draft.Slot)
	if err != nil {
		draft.Reset()
		h.menu(ctx, upd.ChatID, "Виникла помилка при перевірці вільних місць. Будь ласка, спробуйте пізніше.")

		return
	}

	if len(zones) == 0 {
		draft.Reset()
		h.send(ctx, upd.ChatID, "На жаль, на цей час усі кабінки зайняті. Будь ласка, спробуйте інший час або дату.")
		h.menu(ctx, upd.ChatID, "Повертаю вас до головного меню.")

		return
	}

	rows := make([][]messenger.Button, 0, len(zones))
	for _, zone := range zones {
		rows = append(rows, []messenger.Button{{Label: zone, Token: command.Encode(command.ActionZone, zone)}})
	}

	draft.State = session.StateBookingZone
	h.inline(ctx, upd.ChatID, "Оберіть місце або зону:", rows)
}

func (h *Handler) pickZone(ctx context.Context, upd messenger.Update, draft *session.Draft, zone string) {
	if draft.State != session.StateBookingZone || draft.Guests == 0 || !venue.ValidZone(zone) {
		draft.Reset()
		h.edit(ctx, upd, msgDraftLost)
		h.menu(ctx, upd.ChatID, msgAnythingElse)

		return
	}

	draft.Zone = zone

	if draft.ReusedContact && draft.Name != "" && draft.Contact != "" {
		h.edit(ctx, upd, fmt.Sprintf("Ви обрали: %s.", zone))
		h.commit(ctx, upd, draft)

		return
	}

	draft.State = session.StateContactName
	h.edit(ctx, upd, "Як вас звати?")
}

func (h *Handler) answerSavedContact(ctx context.Context, upd messenger.Update, draft *session.Draft, answer string) {
	if draft.State != session.StateSavedContact {
		draft.Reset()
		h.edit(ctx, upd, msgStartOver)
		h.menu(ctx, upd.ChatID, msgAnythingElse)

		return
	}

	switch answer {
	case "yes":
		draft.ReusedContact = true
		h.edit(ctx, upd, "Використаю збережені контакти ✅")
	case "no":
		draft.Name = ""
		draft.Contact = ""
		draft.ReusedContact = false
		h.edit(ctx, upd, "Добре, введемо контакти заново.")
	default:
		h.edit(ctx, upd, msgBadToken)

		return
	}

	draft.State = session.StateBookingDate
	h.send(ctx, upd.ChatID, msgAskDate)
}

func (h *Handler) handleName(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	if text == "" {
		h.send(ctx, upd.ChatID, "Як вас звати?")

		return
	}

	draft.Name = text
	draft.State = session.StateContactPhone

	h.send(ctx, upd.ChatID, msgAskPhone)
}

func (h *Handler) handlePhone(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	if text == "" {
		h.send(ctx, upd.ChatID, msgAskPhone)

		return
	}

	draft.Contact = text
	h.commit(ctx, upd, draft)
}

// commit persists the finished draft. Exactly one insert attempt and, on
// success, exactly one admin notification; the draft is reset on every
// outcome.
func (h *Handler) commit(ctx context.Context, upd messenger.Update, draft *session.Draft) {
	req := bookingDto.CreateBookingRequest{
		UserID:   upd.UserID,
		ChatID:   upd.ChatID,
		Name:     draft.Name,
		Nickname: upd.Nickname,
		Date:     draft.Date,
		Slot:     draft.Slot,
		Guests:   draft.Guests,
		Zone:     draft.Zone,
		Contact:  draft.Contact,
	}

	booking, err := h.bookings.Create(ctx, req)

	switch {
	case failure.IsConflict(err):
		draft.Reset()
		h.send(ctx, upd.ChatID, "На жаль, це місце щойно зайняли. Будь ласка, спробуйте інший час або зону.")
		h.menu(ctx, upd.ChatID, "Повертаю вас до головного меню.")

		return
	case failure.IsCode(err, http.StatusBadRequest):
		draft.Reset()
		h.menu(ctx, upd.ChatID, msgDraftLost)

		return
	case err != nil:
		draft.Reset()
		h.menu(ctx, upd.ChatID, "Виникла помилка при збереженні бронювання. Будь ласка, спробуйте ще раз.")

		return
	}

	h.send(ctx, upd.ChatID, "✅ Дякуємо! Ми отримали твоє бронювання.")
	h.send(ctx, upd.ChatID, "📬 Чекаємо на підтвердження адміністратором.")

	if err := h.notifier.BookingSubmitted(ctx, booking); err != nil {
		h.send(ctx, upd.ChatID, fmt.Sprintf(
			"Виникла помилка при відправці повідомлення адміністратору. Будь ласка, зв'яжіться з нами за номером %s.",
			h.cfg.Telegram.AdminPhone))
	}

	reused := draft.ReusedContact
	name, contact := draft.Name, draft.Contact

	draft.Reset()

	if !reused {
		// keep the contacts around for the save-consent answer
		draft.Name = name
		draft.Contact = contact

		rows := [][]messenger.Button{{
			{Label: "✅ Так", Token: command.Encode(command.ActionSaveContact, "yes")},
			{Label: "❌ Ні", Token: command.Encode(command.ActionSaveContact, "no")},
		}}
		h.inline(ctx, upd.ChatID, "Зберегти ім'я та номер для наступних бронювань?", rows)
	}

	h.menu(ctx, upd.ChatID, msgAnythingElse)
}

func (h *Handler) answerSaveContact(ctx context.Context, upd messenger.Update, draft *session.Draft, answer string) {
	name, contact := draft.Name, draft.Contact
	draft.Name = ""
	draft.Contact = ""

	switch answer {
	case "yes":
		if name == "" || contact == "" {
			h.edit(ctx, upd, "Контакти вже недоступні. Введіть їх під час наступного бронювання.")

			return
		}

		err := h.profiles.Save(ctx, profileDto.SaveContactRequest{
			UserID:  upd.UserID,
			Name:    name,
			Contact: contact,
		})
		if err != nil {
			h.edit(ctx, upd, "Не вдалося зберегти контакти. Спробуйте пізніше.")

			return
		}

		h.edit(ctx, upd, "Контакти збережено ✅")
	case "no":
		h.edit(ctx, upd, "Добре, не зберігаю.")
	default:
		h.edit(ctx, upd, msgBadToken)
	}
}

func (h *Handler) pickRating(ctx context.Context, upd messenger.Update, draft *session.Draft, payload string) {
	rating, err := strconv.Atoi(payload)
	if err != nil || rating < 1 || rating > 5 {
		h.edit(ctx, upd, msgBadToken)

		return
	}

	draft.Rating = rating
	draft.State = session.StateReviewText

	h.edit(ctx, upd, fmt.Sprintf("Ваша оцінка: %d/5. Напишіть, будь ласка, кілька слів відгуку:", rating))
}

func (h *Handler) handleReviewText(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	if text == "" {
		h.send(ctx, upd.ChatID, "Напишіть, будь ласка, кілька слів відгуку:")

		return
	}

	review, err := h.reviews.Create(ctx, reviewDto.CreateReviewRequest{
		UserID: upd.UserID,
		Rating: draft.Rating,
		Body:   text,
	})

	draft.Reset()

	if err != nil {
		if failure.IsCode(err, http.StatusBadRequest) {
			h.menu(ctx, upd.ChatID, msgStartOver)
		} else {
			h.menu(ctx, upd.ChatID, "Виникла помилка. Будь ласка, спробуйте пізніше.")
		}

		return
	}

	h.notifier.ReviewSubmitted(ctx, review, upd.Nickname)
	h.menu(ctx, upd.ChatID, "Дякуємо за відгук! 💛")
}

func (h *Handler) listOwnBookings(ctx context.Context, upd messenger.Update) {
	bookings, err := h.bookings.ListActiveByUser(ctx, upd.UserID)
	if err != nil {
		h.menu(ctx, upd.ChatID, "Виникла помилка. Будь ласка, спробуйте пізніше.")

		return
	}

	if len(bookings) == 0 {
		h.menu(ctx, upd.ChatID, "У вас немає активних бронювань.")

		return
	}

	h.send(ctx, upd.ChatID, "Ваші активні бронювання:")

	for _, booking := range bookings {
		text := fmt.Sprintf(
			"📅 Дата: %s\n⏰ Час: %s\n🏠 Кабінка: %s\n👥 Гостей: %d\n📌 Статус: %s",
			booking.Date, booking.Slot, booking.Zone, booking.Guests, booking.Status.Label(),
		)
		rows := [][]messenger.Button{{
			{Label: "❌ Скасувати цю бронь", Token: command.Encode(command.ActionCancel, booking.ID)},
		}}
		h.inline(ctx, upd.ChatID, text, rows)
	}

	h.menu(ctx, upd.ChatID, msgAnythingElse)
}

func (h *Handler) handleAdminViewDate(ctx context.Context, upd messenger.Update, draft *session.Draft, text string) {
	date, err := venue.ParseViewDate(text)
	if err != nil {
		h.send(ctx, upd.ChatID, err.Error())

		return
	}

	draft.Reset()

	bookings, err := h.bookings.ListActiveByDate(ctx, date)
	if err != nil {
		h.menu(ctx, upd.ChatID, "Виникла помилка. Будь ласка, спробуйте пізніше.")

		return
	}

	if len(bookings) == 0 {
		h.menu(ctx, upd.ChatID, fmt.Sprintf("На %s немає активних бронювань.", date))

		return
	}

	h.send(ctx, upd.ChatID, fmt.Sprintf("Ось бронювання на %s:", date))

	for i, booking := range bookings {
		text := fmt.Sprintf(
			"🔢 #%d\n📅 Дата: %s\n⏰ Час: %s\n🏠 Кабінка: %s\n👤 %s (%s)\n👥 Гостей: %d\n📌 Статус: %s",
			i+1, booking.Date, booking.Slot, booking.Zone,
			booking.Name, booking.Contact, booking.Guests, booking.Status.Label(),
		)
		rows := [][]messenger.Button{{
			{Label: "❌ Скасувати цю бронь", Token: command.Encode(command.ActionForceCancel, booking.ID)},
		}}
		h.inline(ctx, upd.ChatID, text, rows)
	}

	h.menu(ctx, upd.ChatID, msgAnythingElse)
}

func (h *Handler) cancelOwn(ctx context.Context, upd messenger.Update, id string) {
	booking, err := h.bookings.CancelByGuest(ctx, upd.UserID, id)

	var already *bookingService.AlreadyFinalized

	switch {
	case err == nil:
		h.edit(ctx, upd, fmt.Sprintf("✅ Бронювання на %s о %s скасовано.", booking.Date, booking.Slot))
		h.notifier.BookingCancelledByGuest(ctx, booking)
	case errors.As(err, &already):
		h.edit(ctx, upd, fmt.Sprintf("Ця бронь вже '%s'.", already.Status.Label()))
	case failure.IsCode(err, http.StatusForbidden):
		h.edit(ctx, upd, "Ви не маєте прав для виконання цієї дії.")
	case failure.IsNotFound(err):
		h.edit(ctx, upd, "Бронювання не знайдено або вже видалено.")
	default:
		h.edit(ctx, upd, "Виникла помилка. Будь ласка, спробуйте пізніше.")
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string) {
	if err := h.msg.SendText(ctx, chatID, text); err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Msg("failed to send message")
	}
}

func (h *Handler) menu(ctx context.Context, chatID int64, text string) {
	if err := h.msg.SendMenu(ctx, chatID, text, menuRows()); err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Msg("failed to send menu")
	}
}

func (h *Handler) inline(ctx context.Context, chatID int64, text string, rows [][]messenger.Button) {
	if err := h.msg.SendInline(ctx, chatID, text, rows); err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Msg("failed to send inline keyboard")
	}
}

func (h *Handler) edit(ctx context.Context, upd messenger.Update, text string) {
	if err := h.msg.EditText(ctx, upd.ChatID, upd.MessageID, text); err != nil {
		log.Error().Err(err).Int64("chatID", upd.ChatID).Msg("failed to edit message")
	}
}
