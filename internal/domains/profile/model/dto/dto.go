package dto

import (
	"gipnoze/internal/domains/profile/model"
	"gipnoze/shared/timezone"
)

// SaveContactRequest captures the contact details a guest agreed to keep for
// next time.
type SaveContactRequest struct {
	UserID  int64  `validate:"required"`
	Name    string `validate:"required"`
	Contact string `validate:"required"`
}

func (req SaveContactRequest) ToModel() model.ContactProfile {
	now := timezone.Now()

	return model.ContactProfile{
		UserID:     req.UserID,
		Name:       req.Name,
		Contact:    req.Contact,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}
