package submissions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/domain"
	submissionRepo "github.com/inkline/studio/internal/infra/storage/submission"
	"github.com/inkline/studio/internal/service/submissions/models"
	"github.com/inkline/studio/pkg/ptr"
)

type fakeRepo struct {
	list      []*domain.ContactSubmission
	err       error
	statuses  []*domain.SubmissionStatus
	updateErr error
	updated   map[int64]domain.SubmissionStatus
}

func (f *fakeRepo) List(_ context.Context, status *domain.SubmissionStatus) ([]*domain.ContactSubmission, error) {
	f.statuses = append(f.statuses, status)
	return f.list, f.err
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.SubmissionStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = map[int64]domain.SubmissionStatus{}
	}
	f.updated[id] = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{list: []*domain.ContactSubmission{
		{ID: 1, Name: "Grace", Email: "grace@example.com", Message: "hello there studio", Status: domain.SubmissionNew},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), ptr.Ptr("new"))

	require.NoError(t, err)
	require.Len(t, resp.Submissions, 1)
	assert.Equal(t, "new", resp.Submissions[0].Status)
	require.NotNil(t, repo.statuses[0])
	assert.Equal(t, domain.SubmissionNew, *repo.statuses[0])
}

func TestService_List_AllStatuses(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, resp.Submissions)
	assert.Nil(t, repo.statuses[0])
}

func TestService_List_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})
	_, err := svc.List(context.Background(), ptr.Ptr("spam"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc = NewService(&fakeRepo{err: errors.New("db down")}, nopLogger{})
	_, err = svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Status: "archived"}))
	assert.Equal(t, domain.SubmissionArchived, repo.updated[3])
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})
	err := svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc = NewService(&fakeRepo{updateErr: submissionRepo.ErrSubmissionNotFound}, nopLogger{})
	err = svc.UpdateStatus(context.Background(), 3, &models.UpdateStatusRequest{Status: "read"})
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}
