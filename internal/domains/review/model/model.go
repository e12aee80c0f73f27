package model

import "time"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID = "id"
)

// Review is a guest's rating and free-text feedback.
type Review struct {
	ID        string    `db:"id"`
	UserID    int64     `db:"user_id"`
	Rating    int       `db:"rating"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
