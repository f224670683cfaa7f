package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/inkline/studio/internal/service/appointments"
	"github.com/inkline/studio/internal/service/appointments/models"
)

type fakeService struct{ err error }

func (f fakeService) GetByID(_ context.Context, id int64) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: "pending"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc fakeService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/appointments/{id}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/appointments/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{}, "7")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)

	assert.Equal(t, http.StatusBadRequest, serve(fakeService{}, "seven").Code)
	assert.Equal(t, http.StatusNotFound, serve(fakeService{err: appointments.ErrAppointmentNotFound}, "7").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: appointments.ErrInternal}, "7").Code)
}
