package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"gipnoze/internal/session"
)

func TestStore_DraftRetainsMutations(t *testing.T) {
	store := session.NewStore()

	store.Do(1, func(draft *session.Draft) {
		assert.Equal(t, session.StateChoosingAction, draft.State)

		draft.State = session.StateBookingDate
		draft.Date = "24.12.2025"
	})

	store.Do(1, func(draft *session.Draft) {
		assert.Equal(t, session.StateBookingDate, draft.State)
		assert.Equal(t, "24.12.2025", draft.Date)
	})
}

func TestStore_UsersAreIsolated(t *testing.T) {
	store := session.NewStore()

	store.Do(1, func(draft *session.Draft) {
		draft.Name = "Олена"
	})

	store.Do(2, func(draft *session.Draft) {
		assert.Empty(t, draft.Name)
	})
}

func TestStore_ResetReturnsToMainMenu(t *testing.T) {
	store := session.NewStore()

	store.Do(1, func(draft *session.Draft) {
		draft.State = session.StateContactPhone
		draft.Guests = 4
	})

	store.Reset(1)

	store.Do(1, func(draft *session.Draft) {
		assert.Equal(t, session.StateChoosingAction, draft.State)
		assert.Zero(t, draft.Guests)
	})
}

func TestStore_SerializesPerUser(t *testing.T) {
	store := session.NewStore()

	const updates = 100

	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			store.Do(1, func(draft *session.Draft) {
				draft.Guests++
			})
		}()
	}

	wg.Wait()

	store.Do(1, func(draft *session.Draft) {
		assert.Equal(t, updates, draft.Guests)
	})
}
