package upload_reference

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/domain"
	"github.com/inkline/studio/internal/integrations/mediastore"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type fakeRepo struct {
	saved []*domain.Upload
	err   error
}

func (f *fakeRepo) Create(_ context.Context, u *domain.Upload) (*domain.Upload, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = append(f.saved, u)
	return u, nil
}

type fakeMedia struct {
	publicIDs []string
	payloads  [][]byte
	deleted   []string
	err       error
	deleteErr error
}

func (f *fakeMedia) Upload(_ context.Context, publicID string, file io.Reader) (*mediastore.Object, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, _ := io.ReadAll(file)
	f.publicIDs = append(f.publicIDs, publicID)
	f.payloads = append(f.payloads, data)
	return &mediastore.Object{
		PublicID: "references/" + publicID,
		URL:      "https://res.cloudinary.com/demo/image/upload/references/" + publicID + ".png",
	}, nil
}

func (f *fakeMedia) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_UploadsImage(t *testing.T) {
	repo := &fakeRepo{}
	media := &fakeMedia{}
	uc := NewUseCase(repo, media, 1<<20, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Content: pngHeader, OriginalName: "../../rose.png"})

	require.NoError(t, err)
	require.Len(t, media.publicIDs, 1)
	assert.Equal(t, resp.ID.String(), media.publicIDs[0])
	assert.Equal(t, pngHeader, media.payloads[0])
	assert.Contains(t, resp.URL, resp.ID.String())

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "image/png", repo.saved[0].ContentType)
	assert.Equal(t, "rose.png", repo.saved[0].OriginalName)
	assert.Equal(t, int64(len(pngHeader)), repo.saved[0].SizeBytes)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		wantErr error
	}{
		{"empty", nil, ErrEmptyFile},
		{"too large", make([]byte, 64), ErrTooLarge},
		{"text", []byte("just some plain text, not an image"), ErrUnsupportedType},
		{"pdf", []byte("%PDF-1.4\n"), ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media := &fakeMedia{}
			uc := NewUseCase(&fakeRepo{}, media, 40, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{Content: tt.content})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, media.publicIDs)
		})
	}
}

func TestExecute_MediaStoreDisabled(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeMedia{err: mediastore.ErrDisabled}, 1<<20, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Content: pngHeader})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_MediaStoreError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeMedia{err: errors.New("timeout")}, 1<<20, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Content: pngHeader})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryErrorRemovesUploadedFile(t *testing.T) {
	media := &fakeMedia{}
	uc := NewUseCase(&fakeRepo{err: errors.New("db down")}, media, 1<<20, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Content: pngHeader})

	assert.ErrorIs(t, err, ErrInternal)
	require.Len(t, media.publicIDs, 1)
	assert.Equal(t, []string{"references/" + media.publicIDs[0]}, media.deleted)
}

func TestExecute_RepositoryErrorWhenCleanupFails(t *testing.T) {
	media := &fakeMedia{deleteErr: errors.New("cloudinary down")}
	uc := NewUseCase(&fakeRepo{err: errors.New("db down")}, media, 1<<20, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Content: pngHeader})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Len(t, media.deleted, 1)
}

func TestExecute_SuccessKeepsFile(t *testing.T) {
	media := &fakeMedia{}
	uc := NewUseCase(&fakeRepo{}, media, 1<<20, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Content: pngHeader})

	require.NoError(t, err)
	assert.Empty(t, media.deleted)
}
