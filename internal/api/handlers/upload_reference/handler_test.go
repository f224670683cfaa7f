package upload_reference

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uploadReference "github.com/inkline/studio/internal/usecase/upload_reference"
)

type fakeUseCase struct {
	err  error
	reqs []*uploadReference.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *uploadReference.Request) (*uploadReference.Response, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return &uploadReference.Response{
		ID:  uuid.MustParse("6f1c2d3e-4b5a-4789-9abc-def012345678"),
		URL: "https://res.cloudinary.com/demo/image/upload/references/6f1c2d3e.png",
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, 1024, nopLogger{}).Handle(rec, multipartRequest(t, "file", "rose.png", []byte("\x89PNG\r\n\x1a\n")))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"6f1c2d3e-4b5a-4789-9abc-def012345678","url":"https://res.cloudinary.com/demo/image/upload/references/6f1c2d3e.png"}`, rec.Body.String())
	require.Len(t, uc.reqs, 1)
	assert.Equal(t, "rose.png", uc.reqs[0].OriginalName)
}

func TestHandle_MissingField(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()

	NewHandler(uc, 1024, nopLogger{}).Handle(rec, multipartRequest(t, "image", "rose.png", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.reqs)
}

func TestHandle_ReadsOneByteOverLimit(t *testing.T) {
	uc := &fakeUseCase{err: uploadReference.ErrTooLarge}
	rec := httptest.NewRecorder()

	NewHandler(uc, 16, nopLogger{}).Handle(rec, multipartRequest(t, "file", "big.png", make([]byte, 64)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Len(t, uc.reqs, 1)
	assert.Len(t, uc.reqs[0].Content, 17)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{uploadReference.ErrEmptyFile, http.StatusBadRequest},
		{uploadReference.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{uploadReference.ErrUnavailable, http.StatusServiceUnavailable},
		{uploadReference.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		NewHandler(&fakeUseCase{err: tt.err}, 1024, nopLogger{}).Handle(rec, multipartRequest(t, "file", "a.png", []byte("x")))
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
