package domain

import (
	"time"

	"github.com/inkline/studio/pkg/types"
)

var canonicalSlots = buildCanonicalSlots()

func buildCanonicalSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, SlotCount)
	for m := FirstSlotMinutes; m <= LastSlotMinutes; m += SlotStepMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			panic(err)
		}
		slots = append(slots, slot)
	}
	return slots
}

// CanonicalSlots returns the ordered start labels of a working day, 11:00 through 19:00
func CanonicalSlots() []types.TimeString {
	out := make([]types.TimeString, len(canonicalSlots))
	copy(out, canonicalSlots)
	return out
}

// SlotIndex returns the position of t in the canonical sequence or -1
func SlotIndex(t types.TimeString) int {
	for i, slot := range canonicalSlots {
		if slot == t {
			return i
		}
	}
	return -1
}

// IsCanonicalSlot returns true if t is one of the canonical start labels
func IsCanonicalSlot(t types.TimeString) bool {
	return SlotIndex(t) >= 0
}

// SlotsOccupied returns ceil(duration/30); non-positive durations occupy nothing
func SlotsOccupied(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return (durationMinutes + SlotStepMinutes - 1) / SlotStepMinutes
}

// IsWeekend returns true for Saturday and Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// InWeekendHours returns true if a slot may start on a weekend
func InWeekendHours(t types.TimeString) bool {
	h := t.Hour()
	return h >= WeekendOpenHour && h < WeekendCloseHour
}

// NormalizeDate truncates date to midnight in its own location
func NormalizeDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}
