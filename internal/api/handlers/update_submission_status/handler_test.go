package update_submission_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/inkline/studio/internal/service/submissions"
	"github.com/inkline/studio/internal/service/submissions/models"
)

type fakeService struct {
	err   error
	calls int
	last  string
}

func (f *fakeService) UpdateStatus(_ context.Context, _ int64, req *models.UpdateStatusRequest) error {
	f.calls++
	f.last = req.Status
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(svc *fakeService, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/admin/submissions/{id}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/admin/submissions/"+id+"/status", strings.NewReader(body)))
	return rec
}

func TestHandle_NoContent(t *testing.T) {
	svc := &fakeService{}

	rec := patch(svc, "4", `{"status":"read"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "read", svc.last)
}

func TestHandle_Rejects(t *testing.T) {
	svc := &fakeService{}

	assert.Equal(t, http.StatusBadRequest, patch(svc, "0", `{"status":"read"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, "4", `{"status":"spam"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(svc, "4", `not json`).Code)
	assert.Zero(t, svc.calls)

	assert.Equal(t, http.StatusNotFound, patch(&fakeService{err: submissions.ErrSubmissionNotFound}, "4", `{"status":"archived"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, patch(&fakeService{err: submissions.ErrInternal}, "4", `{"status":"archived"}`).Code)
}
