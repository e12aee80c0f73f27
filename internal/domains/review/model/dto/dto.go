package dto

import (
	"gipnoze/internal/domains/review/model"
	"gipnoze/shared/timezone"
)

// CreateReviewRequest is a finished review: the rating picked from the
// buttons plus the follow-up text.
type CreateReviewRequest struct {
	UserID int64  `validate:"required"`
	Rating int    `validate:"required,min=1,max=5"`
	Body   string `validate:"required"`
}

func (req CreateReviewRequest) ToModel() model.Review {
	return model.Review{
		UserID:    req.UserID,
		Rating:    req.Rating,
		Body:      req.Body,
		CreatedAt: timezone.Now(),
	}
}
