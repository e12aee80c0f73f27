package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldDate   = "booking_date"
	FieldSlot   = "slot"
	FieldZone   = "zone"
	FieldStatus = "status"

	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending          Status = "pending"
	StatusConfirmed        Status = "confirmed"
	StatusRejected         Status = "rejected"
	StatusCancelledByGuest Status = "cancelled_by_guest"
	StatusCancelledByAdmin Status = "cancelled_by_admin"
)

// ActiveStatuses are the statuses that occupy a zone for availability.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// IsActive reports whether the status still occupies its zone.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Label returns the guest-facing Ukrainian rendering of the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Очікує підтвердження"
	case StatusConfirmed:
		return "Підтверджено"
	case StatusRejected:
		return "Відхилено"
	case StatusCancelledByGuest:
		return "Скасовано (гостем)"
	case StatusCancelledByAdmin:
		return "Скасовано (адміном)"
	default:
		return string(s)
	}
}

// Booking is the central reservation record. The id is assigned by the store
// on insert; records are never deleted, only transitioned.
type Booking struct {
	ID         string         `db:"id"`
	UserID     int64          `db:"user_id"`
	ChatID     int64          `db:"chat_id"`
	Name       string         `db:"name"`
	Nickname   sql.NullString `db:"nickname"`
	Date       string         `db:"booking_date"`
	Slot       string         `db:"slot"`
	Guests     int            `db:"guests"`
	Zone       string         `db:"zone"`
	Contact    string         `db:"contact"`
	Status     Status         `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
	ModifiedAt time.Time      `db:"modified_at"`
}
