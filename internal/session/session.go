// Package session holds the in-progress dialog state per guest. Drafts live
// in process memory only: they are staging, never durable, and a restart
// simply returns everyone to the main menu.
package session

import (
	"sync"
)

// State names the question the dialog is currently waiting on.
type State string

const (
	StateChoosingAction State = "choosing_action"
	StateSavedContact   State = "saved_contact"
	StateBookingDate    State = "booking_date"
	StateBookingTime    State = "booking_time"
	StateBookingGuests  State = "booking_guests"
	StateBookingZone    State = "booking_zone"
	StateContactName    State = "contact_name"
	StateContactPhone   State = "contact_phone"
	StateSaveContact    State = "save_contact"
	StateReviewText     State = "review_text"
	StateAdminViewDate  State = "admin_view_date"
)

// Draft accumulates one guest's answers across the dialog. Fields are filled
// strictly in dialog order; committing reads them all at once.
type Draft struct {
	State State

	Date     string
	Slot     string
	Guests   int
	Zone     string
	Name     string
	Nickname string
	Contact  string

	// ReusedContact marks name and contact as prefilled from the guest's
	// saved profile, so the contact questions and the save offer are skipped.
	ReusedContact bool

	Rating int
}

// Reset returns the draft to a clean main-menu state in place.
func (d *Draft) Reset() {
	*d = Draft{State: StateChoosingAction}
}

type entry struct {
	mu    sync.Mutex
	draft Draft
}

// Store keeps one draft per user id. All access goes through Do, which holds
// a per-user lock for the whole closure: updates from the same guest are
// applied strictly in order even though the transport handles each one on its
// own goroutine, while different guests never block each other.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*entry),
	}
}

// Do runs fn with exclusive access to the user's draft. Mutations made
// through the pointer are retained.
func (s *Store) Do(userID int64, fn func(draft *Draft)) {
	e := s.entry(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	fn(&e.draft)
}

// Reset discards the user's draft, returning them to a clean main-menu state.
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
}

func (s *Store) entry(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry{draft: Draft{State: StateChoosingAction}}
		s.entries[userID] = e
	}

	return e
}
