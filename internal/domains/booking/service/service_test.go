package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gipnoze/config"
	"gipnoze/infras/otel/mocks"
	bookingMocks "gipnoze/internal/domains/booking/mocks"
	"gipnoze/internal/domains/booking/model"
	"gipnoze/internal/domains/booking/model/dto"
	"gipnoze/internal/domains/booking/repository"
	"gipnoze/internal/domains/booking/service"
	"gipnoze/internal/venue"
	"gipnoze/shared/failure"
)

const (
	adminID   = int64(42)
	guestID   = int64(777)
	bookingID = "3f1d9a2c-5b6e-4c7d-8e9f-0a1b2c3d4e5f"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Telegram.AdminUserID = adminID

	return service.New(mockRepo, cfg, mockOtel), mockRepo
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		UserID:  guestID,
		ChatID:  guestID,
		Name:    "Олена",
		Date:    "24.12.2025",
		Slot:    venue.TimeSlots()[0],
		Guests:  4,
		Zone:    venue.Zones[0],
		Contact: "+380501234567",
	}
}

func TestBookingService_AvailableZones(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *bookingMocks.MockBooking)
		wantErr   bool
		wantZones []string
	}{
		{
			name: "one zone taken, the rest offered",
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), repository.Filter{
						Date:     "24.12.2025",
						Slot:     "17:00",
						Statuses: model.ActiveStatuses,
					}).
					Return([]model.Booking{{Zone: venue.Zones[0], Status: model.StatusPending}}, nil)
			},
			wantZones: venue.Zones[1:],
		},
		{
			name: "nothing booked, full catalog",
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantZones: venue.Zones,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			zones, err := svc.AvailableZones(context.Background(), "24.12.2025", "17:00")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantZones, zones)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateBookingRequest
		setupMock    func(mockRepo *bookingMocks.MockBooking)
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "successful creation",
			req:  validRequest(),
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(bookingID, nil)
			},
		},
		{
			name: "incomplete request fails before the store",
			req: dto.CreateBookingRequest{
				UserID: guestID,
				ChatID: guestID,
			},
			setupMock: func(mockRepo *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "unknown slot",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.Slot = "03:00"
				return req
			}(),
			setupMock: func(mockRepo *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "unknown zone",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.Zone = "Зала 99"
				return req
			}(),
			setupMock: func(mockRepo *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "zone taken concurrently",
			req:  validRequest(),
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return("", failure.Conflict("zone already booked for this date and time"))
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "repository error",
			req:  validRequest(),
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return("", errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			booking, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantConflict {
					assert.True(t, failure.IsConflict(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, bookingID, booking.ID)
				assert.Equal(t, model.StatusPending, booking.Status)
			}
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	pending := model.Booking{ID: bookingID, UserID: guestID, Status: model.StatusPending}

	tests := []struct {
		name        string
		actorID     int64
		id          string
		setupMock   func(mockRepo *bookingMocks.MockBooking)
		wantErr     bool
		wantAlready model.Status
	}{
		{
			name:    "successful confirmation",
			actorID: adminID,
			id:      bookingID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(pending, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), bookingID, model.StatusConfirmed, model.StatusPending).
					Return(true, nil)
			},
		},
		{
			name:      "non-admin actor",
			actorID:   guestID,
			id:        bookingID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name:      "malformed id",
			actorID:   adminID,
			id:        "not-a-uuid",
			setupMock: func(mockRepo *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name:    "booking not found",
			actorID: adminID,
			id:      bookingID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(model.Booking{}, failure.NotFound("booking not found"))
			},
			wantErr: true,
		},
		{
			name:    "already rejected by a parallel tap",
			actorID: adminID,
			id:      bookingID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(pending, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), bookingID, model.StatusConfirmed, model.StatusPending).
					Return(false, nil)

				rejected := pending
				rejected.Status = model.StatusRejected

				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(rejected, nil)
			},
			wantErr:     true,
			wantAlready: model.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			booking, err := svc.Confirm(context.Background(), tt.actorID, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantAlready != "" {
					var already *service.AlreadyFinalized
					assert.ErrorAs(t, err, &already)
					assert.Equal(t, tt.wantAlready, already.Status)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusConfirmed, booking.Status)
			}
		})
	}
}

func TestBookingService_Reject(t *testing.T) {
	svc, mockRepo := newService(t)

	pending := model.Booking{ID: bookingID, UserID: guestID, Status: model.StatusPending}

	mockRepo.EXPECT().
		GetByID(gomock.Any(), bookingID).
		Return(pending, nil)

	mockRepo.EXPECT().
		UpdateStatus(gomock.Any(), bookingID, model.StatusRejected, model.StatusPending).
		Return(true, nil)

	booking, err := svc.Reject(context.Background(), adminID, bookingID)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusRejected, booking.Status)
}

func TestBookingService_ForceCancel(t *testing.T) {
	tests := []struct {
		name      string
		actorID   int64
		setupMock func(mockRepo *bookingMocks.MockBooking)
		wantErr   bool
	}{
		{
			name:    "cancels a confirmed booking",
			actorID: adminID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				confirmed := model.Booking{ID: bookingID, UserID: guestID, Status: model.StatusConfirmed}

				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), bookingID, model.StatusCancelledByAdmin, model.StatusPending, model.StatusConfirmed).
					Return(true, nil)
			},
		},
		{
			name:      "non-admin actor",
			actorID:   guestID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			booking, err := svc.ForceCancel(context.Background(), tt.actorID, bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCancelledByAdmin, booking.Status)
			}
		})
	}
}

func TestBookingService_CancelByGuest(t *testing.T) {
	tests := []struct {
		name      string
		actorID   int64
		setupMock func(mockRepo *bookingMocks.MockBooking)
		wantErr   bool
	}{
		{
			name:    "owner cancels own booking",
			actorID: guestID,
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				confirmed := model.Booking{ID: bookingID, UserID: guestID, Status: model.StatusConfirmed}

				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(confirmed, nil).
					Times(2)

				mockRepo.EXPECT().
					UpdateStatus(gomock.Any(), bookingID, model.StatusCancelledByGuest, model.StatusPending, model.StatusConfirmed).
					Return(true, nil)
			},
		},
		{
			name:    "someone else's booking is forbidden",
			actorID: int64(1234),
			setupMock: func(mockRepo *bookingMocks.MockBooking) {
				mockRepo.EXPECT().
					GetByID(gomock.Any(), bookingID).
					Return(model.Booking{ID: bookingID, UserID: guestID, Status: model.StatusPending}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newService(t)
			tt.setupMock(mockRepo)

			booking, err := svc.CancelByGuest(context.Background(), tt.actorID, bookingID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusCancelledByGuest, booking.Status)
			}
		})
	}
}

func TestBookingService_ListActiveByUser(t *testing.T) {
	svc, mockRepo := newService(t)

	userID := guestID
	mockRepo.EXPECT().
		GetAll(gomock.Any(), repository.Filter{UserID: &userID, Statuses: model.ActiveStatuses}).
		Return([]model.Booking{{ID: bookingID, UserID: guestID}}, nil)

	bookings, err := svc.ListActiveByUser(context.Background(), guestID)

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
}
