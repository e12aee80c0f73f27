package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"gipnoze/internal/domains/booking/model"
	"gipnoze/shared/failure"
	"gipnoze/shared/timezone"
)

// memoryImpl is the ephemeral store: same contract as the postgres
// implementation, bookings kept in insertion order in process memory. The
// single mutex makes the availability-conflict check and the append one
// atomic step, which is what the conditional insert requires.
type memoryImpl struct {
	mu       sync.Mutex
	bookings []model.Booking
	byID     map[string]int
}

func NewMemory() Booking {
	return &memoryImpl{
		byID: map[string]int{},
	}
}

func (repo *memoryImpl) Insert(_ context.Context, booking model.Booking) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.bookings {
		if existing.Status.IsActive() &&
			existing.Date == booking.Date &&
			existing.Slot == booking.Slot &&
			existing.Zone == booking.Zone {
			return "", failure.Conflict("zone already booked for this date and time")
		}
	}

	booking.ID = uuid.NewString()
	repo.byID[booking.ID] = len(repo.bookings)
	repo.bookings = append(repo.bookings, booking)

	return booking.ID, nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx, ok := repo.byID[id]
	if !ok {
		return model.Booking{}, failure.NotFound("booking not found")
	}

	return repo.bookings[idx], nil
}

func (repo *memoryImpl) GetAll(_ context.Context, filter Filter) ([]model.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var result []model.Booking

	for _, booking := range repo.bookings {
		if matches(booking, filter) {
			result = append(result, booking)
		}
	}

	return result, nil
}

func (repo *memoryImpl) UpdateStatus(_ context.Context, id string, to model.Status, from ...model.Status) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	idx, ok := repo.byID[id]
	if !ok {
		return false, nil
	}

	if len(from) > 0 && !slices.Contains(from, repo.bookings[idx].Status) {
		return false, nil
	}

	repo.bookings[idx].Status = to
	repo.bookings[idx].ModifiedAt = timezone.Now()

	return true, nil
}

func matches(booking model.Booking, filter Filter) bool {
	if filter.UserID != nil && booking.UserID != *filter.UserID {
		return false
	}

	if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, booking.Status) {
		return false
	}

	if filter.Date != "" && booking.Date != filter.Date {
		return false
	}

	if filter.Slot != "" && booking.Slot != filter.Slot {
		return false
	}

	if filter.Zone != "" && booking.Zone != filter.Zone {
		return false
	}

	return true
}
