package model

import "time"

const (
	TableName  = "contact_profiles"
	EntityName = "contact_profile"

	FieldUserID = "user_id"
)

// ContactProfile remembers the name and phone a guest used on their last
// booking, so returning guests can skip the contact questions.
type ContactProfile struct {
	UserID     int64     `db:"user_id"`
	Name       string    `db:"name"`
	Contact    string    `db:"contact"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}
