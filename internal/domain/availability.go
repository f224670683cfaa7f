package domain

import (
	"time"

	"github.com/inkline/studio/pkg/types"
)

// AvailableSlots returns the bookable start labels for date in canonical order.
//
// Each occupying appointment removes ceil(duration/30) labels starting at its
// own start label; marking stops at the end of the day. An appointment whose
// start is not a canonical label marks nothing. On weekends only labels with
// an hour in [12, 17) are kept. The result depends only on the arguments.
func AvailableSlots(date time.Time, appointments []*Appointment) []types.TimeString {
	occupied := make([]bool, len(canonicalSlots))

	for _, a := range appointments {
		if a == nil || !a.OccupiesSlot() {
			continue
		}
		idx := SlotIndex(a.StartTime)
		if idx < 0 {
			continue
		}
		end := idx + SlotsOccupied(a.DurationMinutes)
		if end > len(occupied) {
			end = len(occupied)
		}
		for i := idx; i < end; i++ {
			occupied[i] = true
		}
	}

	weekend := IsWeekend(date)
	available := make([]types.TimeString, 0, len(canonicalSlots))
	for i, slot := range canonicalSlots {
		if occupied[i] {
			continue
		}
		if weekend && !InWeekendHours(slot) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// CoveredSlots returns the labels an appointment starting at start would occupy.
// ok is false if start is not canonical or the appointment runs past the last label.
func CoveredSlots(start types.TimeString, durationMinutes int) (slots []types.TimeString, ok bool) {
	idx := SlotIndex(start)
	n := SlotsOccupied(durationMinutes)
	if idx < 0 || n == 0 || idx+n > len(canonicalSlots) {
		return nil, false
	}
	out := make([]types.TimeString, n)
	copy(out, canonicalSlots[idx:idx+n])
	return out, true
}

// FitsInto reports whether every slot the appointment would cover is in available
func FitsInto(available []types.TimeString, start types.TimeString, durationMinutes int) bool {
	covered, ok := CoveredSlots(start, durationMinutes)
	if !ok {
		return false
	}

	free := make(map[types.TimeString]struct{}, len(available))
	for _, slot := range available {
		free[slot] = struct{}{}
	}
	for _, slot := range covered {
		if _, exists := free[slot]; !exists {
			return false
		}
	}
	return true
}

// StartingFrom drops slots starting before earliest
func StartingFrom(slots []types.TimeString, earliest types.TimeString) []types.TimeString {
	out := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(earliest) {
			out = append(out, slot)
		}
	}
	return out
}

// IsPastDate reports whether the calendar day of date is before the day of now.
// The date's year, month and day are taken as is, in now's location.
func IsPastDate(date, now time.Time) bool {
	return dayIn(date, now.Location()).Before(NormalizeDate(now))
}

// EarliestStart returns the first start label still bookable on date.
// For future days the zero TimeString is returned, meaning no cutoff.
// ok is false when the cutoff moves past the end of date.
func EarliestStart(date, now time.Time, notice time.Duration) (earliest types.TimeString, ok bool) {
	day := dayIn(date, now.Location())
	today := NormalizeDate(now)
	if day.After(today) {
		return "", true
	}

	cutoff := now.Add(notice)
	if NormalizeDate(cutoff).After(day) {
		return "", false
	}
	return types.NewTimeString(cutoff), true
}

// BookableSlots combines AvailableSlots with the notice cutoff for date as seen at now
func BookableSlots(date, now time.Time, notice time.Duration, appointments []*Appointment) []types.TimeString {
	earliest, ok := EarliestStart(date, now, notice)
	if !ok {
		return []types.TimeString{}
	}

	slots := AvailableSlots(date, appointments)
	if earliest.IsZero() {
		return slots
	}
	return StartingFrom(slots, earliest)
}

func dayIn(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
