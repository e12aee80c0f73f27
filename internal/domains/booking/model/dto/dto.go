package dto

import (
	"database/sql"

	"gipnoze/internal/domains/booking/model"
	"gipnoze/shared/timezone"
)

// CreateBookingRequest is the completed draft handed over by the dialog. The
// validate tags are the commit-time completeness check: a request failing them
// means the draft was lost or never finished.
type CreateBookingRequest struct {
	UserID   int64  `validate:"required"`
	ChatID   int64  `validate:"required"`
	Name     string `validate:"required"`
	Nickname string
	Date     string `validate:"required"`
	Slot     string `validate:"required"`
	Guests   int    `validate:"required,gt=0"`
	Zone     string `validate:"required"`
	Contact  string `validate:"required"`
}

func (req CreateBookingRequest) ToModel() model.Booking {
	now := timezone.Now()

	return model.Booking{
		UserID:     req.UserID,
		ChatID:     req.ChatID,
		Name:       req.Name,
		Nickname:   sql.NullString{String: req.Nickname, Valid: req.Nickname != ""},
		Date:       req.Date,
		Slot:       req.Slot,
		Guests:     req.Guests,
		Zone:       req.Zone,
		Contact:    req.Contact,
		Status:     model.StatusPending,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}
