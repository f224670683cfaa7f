package create_booking

import (
	"fmt"
	"strings"

	"github.com/inkline/studio/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Транспортный слой проверяет формат полей, здесь проверяются правила записи
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer name and email are required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.ServiceType.IsValid() {
		return fmt.Errorf("%w: unknown service type %q", ErrInvalidInput, req.ServiceType)
	}

	if req.DurationMinutes <= 0 || req.DurationMinutes%domain.SlotStepMinutes != 0 || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration must be a positive multiple of %d up to %d minutes",
			ErrInvalidInput, domain.SlotStepMinutes, domain.MaxDurationMinutes)
	}

	// Время должно совпадать с одним из канонических слотов
	if !domain.IsCanonicalSlot(req.StartTime) {
		return fmt.Errorf("%w: %q is not a bookable start time", ErrInvalidTimeSlot, req.StartTime)
	}

	if _, ok := domain.CoveredSlots(req.StartTime, req.DurationMinutes); !ok {
		return fmt.Errorf("%w: %d minutes from %s ends after the last slot",
			ErrInvalidTimeSlot, req.DurationMinutes, req.StartTime)
	}

	return nil
}
