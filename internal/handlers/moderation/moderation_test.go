package moderation_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gipnoze/config"
	"gipnoze/infras/otel/mocks"
	"gipnoze/internal/command"
	bookingModel "gipnoze/internal/domains/booking/model"
	bookingRepository "gipnoze/internal/domains/booking/repository"
	bookingService "gipnoze/internal/domains/booking/service"
	"gipnoze/internal/handlers/moderation"
	"gipnoze/internal/messenger"
	messengerMocks "gipnoze/internal/messenger/mocks"
	"gipnoze/internal/notifier"
	"gipnoze/internal/venue"
	"gipnoze/shared/timezone"
)

const (
	adminID     = int64(42)
	guestID     = int64(777)
	broadcastID = int64(-100500)
)

type sentMsg struct {
	kind   string
	chatID int64
	text   string
}

type outbox struct {
	mu   sync.Mutex
	msgs []sentMsg
}

func (o *outbox) add(msg sentMsg) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.msgs = append(o.msgs, msg)
}

func (o *outbox) to(chatID int64, substr string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, msg := range o.msgs {
		if msg.chatID == chatID && strings.Contains(msg.text, substr) {
			return true
		}
	}

	return false
}

func (o *outbox) lastEdit() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.msgs) - 1; i >= 0; i-- {
		if o.msgs[i].kind == "edit" {
			return o.msgs[i].text
		}
	}

	return ""
}

type fixture struct {
	handler  *moderation.Handler
	bookings bookingRepository.Booking
	out      *outbox
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	out := &outbox{}

	mockMsg := messengerMocks.NewMockMessenger(ctrl)
	mockMsg.EXPECT().
		SendText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chatID int64, text string) error {
			out.add(sentMsg{kind: "text", chatID: chatID, text: text})
			return nil
		}).
		AnyTimes()
	mockMsg.EXPECT().
		SendInline(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chatID int64, text string, _ [][]messenger.Button) error {
			out.add(sentMsg{kind: "inline", chatID: chatID, text: text})
			return nil
		}).
		AnyTimes()
	mockMsg.EXPECT().
		EditText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chatID int64, _ int, text string) error {
			out.add(sentMsg{kind: "edit", chatID: chatID, text: text})
			return nil
		}).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Telegram.AdminUserID = adminID
	cfg.Telegram.BroadcastChatID = broadcastID

	repo := bookingRepository.NewMemory()
	svc := bookingService.New(repo, cfg, mocks.NewOtel())

	return &fixture{
		handler:  moderation.New(svc, notifier.New(mockMsg, cfg), mockMsg),
		bookings: repo,
		out:      out,
	}
}

func (f *fixture) insertPending(t *testing.T) string {
	t.Helper()

	id, err := f.bookings.Insert(context.Background(), bookingModel.Booking{
		UserID:     guestID,
		ChatID:     guestID,
		Name:       "Олена",
		Date:       "31.12.2099",
		Slot:       "19:30",
		Guests:     4,
		Zone:       venue.Zones[0],
		Contact:    "+380991234567",
		Status:     bookingModel.StatusPending,
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
	})
	require.NoError(t, err)

	return id
}

func (f *fixture) tap(t *testing.T, actorID int64, token string) {
	t.Helper()

	cmd, err := command.Parse(token)
	require.NoError(t, err)

	f.handler.Handle(context.Background(), messenger.Update{
		UserID:    actorID,
		ChatID:    actorID,
		Token:     token,
		MessageID: 1,
		Callback:  true,
	}, cmd)
}

func TestModeration_Confirm(t *testing.T) {
	f := newFixture(t)
	id := f.insertPending(t)

	f.tap(t, adminID, command.Encode(command.ActionConfirm, id))

	got, err := f.bookings.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusConfirmed, got.Status)

	assert.Contains(t, f.out.lastEdit(), "✅ Підтверджено:")
	assert.True(t, f.out.to(guestID, "✅ Ваше бронювання підтверджено!"))
	assert.True(t, f.out.to(broadcastID, "✅ Бронювання підтверджено:"))
}

func TestModeration_Reject(t *testing.T) {
	f := newFixture(t)
	id := f.insertPending(t)

	f.tap(t, adminID, command.Encode(command.ActionReject, id))

	got, err := f.bookings.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusRejected, got.Status)

	assert.Contains(t, f.out.lastEdit(), "❌ Відхилено:")
	assert.True(t, f.out.to(guestID, "❌ Ваше бронювання було відхилено."))
}

func TestModeration_Unauthorized(t *testing.T) {
	f := newFixture(t)
	id := f.insertPending(t)

	f.tap(t, guestID, command.Encode(command.ActionConfirm, id))

	got, err := f.bookings.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusPending, got.Status)

	assert.Contains(t, f.out.lastEdit(), "Ви не маєте прав")
}

func TestModeration_DuplicateTap(t *testing.T) {
	f := newFixture(t)
	id := f.insertPending(t)

	f.tap(t, adminID, command.Encode(command.ActionConfirm, id))
	f.tap(t, adminID, command.Encode(command.ActionReject, id))

	got, err := f.bookings.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusConfirmed, got.Status)

	assert.Contains(t, f.out.lastEdit(), "Ця бронь вже 'Підтверджено'.")
	assert.False(t, f.out.to(guestID, "відхилено"))
}

func TestModeration_NotFound(t *testing.T) {
	f := newFixture(t)

	f.tap(t, adminID, command.Encode(command.ActionConfirm, "3f1d9a2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f"))
	assert.Contains(t, f.out.lastEdit(), "Бронювання не знайдено")

	f.tap(t, adminID, command.Encode(command.ActionConfirm, "not-a-uuid"))
	assert.Contains(t, f.out.lastEdit(), "Бронювання не знайдено")
}

func TestModeration_ForceCancelConfirmedBooking(t *testing.T) {
	f := newFixture(t)
	id := f.insertPending(t)

	f.tap(t, adminID, command.Encode(command.ActionConfirm, id))
	f.tap(t, adminID, command.Encode(command.ActionForceCancel, id))

	got, err := f.bookings.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, bookingModel.StatusCancelledByAdmin, got.Status)

	assert.Contains(t, f.out.lastEdit(), "скасовано адміністратором.")
	assert.True(t, f.out.to(guestID, "було скасовано адміністратором."))

	// freed zone can be booked again
	_, err = f.bookings.Insert(context.Background(), bookingModel.Booking{
		UserID:     int64(888),
		ChatID:     int64(888),
		Name:       "Новий гість",
		Date:       "31.12.2099",
		Slot:       "19:30",
		Guests:     2,
		Zone:       venue.Zones[0],
		Contact:    "+380000000000",
		Status:     bookingModel.StatusPending,
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
	})
	assert.NoError(t, err)
}
