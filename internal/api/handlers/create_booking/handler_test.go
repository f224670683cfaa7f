package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/domain"
	createBooking "github.com/inkline/studio/internal/usecase/create_booking"
)

type fakeUseCase struct {
	err  error
	reqs []*createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:              11,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: 60,
		Status:          "pending",
		ServiceType:     string(req.ServiceType),
		CreatedAt:       time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"customerName": "Ada Lovelace",
	"customerEmail": "ada@example.com",
	"customerPhone": "+1 555 0100",
	"serviceType": "custom",
	"date": "2026-10-16",
	"startTime": "14:00",
	"durationMinutes": 90,
	"description": "fine line rose"
}`

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := post(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "2026-10-16", resp.Date)
	assert.Equal(t, "pending", resp.Status)

	require.Len(t, uc.reqs, 1)
	assert.Equal(t, domain.ServiceCustom, uc.reqs[0].ServiceType)
	assert.Equal(t, 90, uc.reqs[0].DurationMinutes)
}

func TestHandle_RejectedBeforeUseCase(t *testing.T) {
	tests := map[string]string{
		"malformed":       `{"customerName":`,
		"non canonical":   strings.Replace(validBody, `"14:00"`, `"14:15"`, 1),
		"before opening":  strings.Replace(validBody, `"14:00"`, `"10:30"`, 1),
		"bad email":       strings.Replace(validBody, `ada@example.com`, `ada`, 1),
		"bad date":        strings.Replace(validBody, `2026-10-16`, `16/10/2026`, 1),
		"odd duration":    strings.Replace(validBody, `90`, `45`, 1),
		"unknown service": strings.Replace(validBody, `"custom"`, `"piercing"`, 1),
		"unknown field":   strings.Replace(validBody, `"date"`, `"status":"confirmed","date"`, 1),
		"missing name":    strings.Replace(validBody, `"Ada Lovelace"`, `""`, 1),
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := post(uc, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, uc.reqs)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{createBooking.ErrTooLateToBook, http.StatusConflict},
		{createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{createBooking.ErrDateInPast, http.StatusBadRequest},
		{createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
