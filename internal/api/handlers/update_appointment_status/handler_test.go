package update_appointment_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/service/appointments"
	"github.com/inkline/studio/internal/service/appointments/models"
)

type fakeService struct {
	err   error
	calls int
}

func (f *fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: req.Status}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(svc *fakeService, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/appointments/{id}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/admin/appointments/"+id+"/status", strings.NewReader(body)))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}

	rec := patch(svc, "3", `{"status":"confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_BadRequests(t *testing.T) {
	svc := &fakeService{}

	assert.Equal(t, http.StatusBadRequest, patch(svc, "x", `{"status":"confirmed"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, "3", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, "3", `{"state":"confirmed"}`).Code)
	assert.Zero(t, svc.calls)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{appointments.ErrInvalidInput, http.StatusBadRequest},
		{appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{appointments.ErrInvalidTransition, http.StatusConflict},
		{appointments.ErrSlotTaken, http.StatusConflict},
		{appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := patch(&fakeService{err: tt.err}, "3", `{"status":"completed"}`)
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
