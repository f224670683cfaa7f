package get_availability

import (
	"time"

	"github.com/inkline/studio/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // Дата (время суток игнорируется)
}

// Response модель ответа со списком свободных слотов в порядке дня
type Response struct {
	Date  time.Time
	Slots []types.TimeString
}
