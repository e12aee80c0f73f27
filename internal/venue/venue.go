// Package venue holds the fixed business catalogs of the lounge: the daily
// time-slot grid and the seating-zone list, plus the date rules guests book
// against.
package venue

import (
	"fmt"
	"slices"
	"time"

	"gipnoze/shared/constant"
	"gipnoze/shared/failure"
	"gipnoze/shared/timezone"
)

const (
	openingHour   = 17
	lastSlotHour  = 22
	slotStepMin   = 30
	slotsPerHour  = 2
	minGuestCount = 1
)

// Zones is the seating catalog with capacity labels, in presentation order.
var Zones = []string{
	"Кабінка 1 (5-10 чол.)",
	"Кабінка 2 (до 8 чол.)",
	"Кабінка 3 (до 6 чол.)",
	"VIP Xbox X (до 12 чол.)",
	"VIP PS5 (до 12 чол.)",
	"Диванчики на барі (до 6 чол.)",
	"Барна стійка (6 місць)",
	"Літня тераса - стіл 1",
	"Літня тераса - стіл 2",
	"Літня тераса - стіл 3",
	"Літня тераса - стіл 4",
	"Додаткове місце на 3 чол.",
}

var timeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := make([]string, 0, (lastSlotHour-openingHour+1)*slotsPerHour)

	for h := openingHour; h <= lastSlotHour; h++ {
		for m := 0; m < 60; m += slotStepMin {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}

	return slots
}

// TimeSlots returns the half-hour grid within the daily opening window.
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

// ValidSlot reports whether value is one of the offered time slots.
func ValidSlot(value string) bool {
	return slices.Contains(timeSlots, value)
}

// ValidZone reports whether value is in the seating catalog.
func ValidZone(value string) bool {
	return slices.Contains(Zones, value)
}

// ValidGuestCount reports whether count is an accepted party size.
func ValidGuestCount(count int) bool {
	return count >= minGuestCount
}

// ParseBookingDate parses a DD.MM.YYYY guest date and rejects dates earlier
// than today in venue-local time. The result is normalized back to the same
// layout.
func ParseBookingDate(value string) (string, error) {
	parsed, err := timezone.Parse(constant.DateLayout, value)
	if err != nil {
		return "", failure.BadRequestFromString("Невірний формат дати. Будь ласка, введіть дату у форматі ДД.ММ.РРРР (наприклад, 30.07.2025).")
	}

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation())

	if parsed.Before(today) {
		return "", failure.BadRequestFromString("Ви не можете забронювати столик на минулу дату. Будь ласка, введіть актуальну дату.")
	}

	return parsed.Format(constant.DateLayout), nil
}

// ParseViewDate parses a DD.MM.YYYY date without the past-date restriction;
// the admin may review history.
func ParseViewDate(value string) (string, error) {
	parsed, err := timezone.Parse(constant.DateLayout, value)
	if err != nil {
		return "", failure.BadRequestFromString("Невірний формат дати. Будь ласка, введіть дату у форматі ДД.ММ.РРРР (наприклад, 30.07.2025).")
	}

	return parsed.Format(constant.DateLayout), nil
}
