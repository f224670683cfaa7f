package transactions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkline/studio/internal/domain"
	transactionRepo "github.com/inkline/studio/internal/infra/storage/transaction"
	"github.com/inkline/studio/internal/service/transactions/models"
	"github.com/inkline/studio/pkg/ptr"
)

type fakeRepo struct {
	list    []*domain.Transaction
	err     error
	filters []domain.TransactionsFilter
	created []*domain.Transaction
}

func (f *fakeRepo) Create(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	t.ID = int64(len(f.created) + 1)
	f.created = append(f.created, t)
	return t, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error) {
	f.filters = append(f.filters, filter)
	return f.list, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_List_TotalsAndBounds(t *testing.T) {
	repo := &fakeRepo{list: []*domain.Transaction{
		{ID: 1, Amount: 100, Kind: domain.TransactionDeposit},
		{ID: 2, Amount: 300, Kind: domain.TransactionPayment},
		{ID: 3, Amount: 50, Kind: domain.TransactionRefund},
	}}
	svc := NewService(repo, time.UTC, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{From: ptr.Ptr("2026-10-01"), To: ptr.Ptr("2026-10-31")})

	require.NoError(t, err)
	assert.Len(t, resp.Transactions, 3)
	assert.Equal(t, 350.0, resp.Total)

	require.Len(t, repo.filters, 1)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *repo.filters[0].From)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), *repo.filters[0].To)
}

func TestService_List_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{From: ptr.Ptr("2026-10-31"), To: ptr.Ptr("2026-10-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{From: ptr.Ptr("yesterday")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, time.UTC, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateRequest{
		AppointmentID: 4, Amount: 80, Kind: "deposit", Method: "card",
	})

	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, int64(4), resp.AppointmentID)
}

func TestService_Create_Errors(t *testing.T) {
	svc := NewService(&fakeRepo{}, time.UTC, nopLogger{})
	_, err := svc.Create(context.Background(), &models.CreateRequest{AppointmentID: 4, Amount: -1, Kind: "deposit", Method: "card"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateRequest{AppointmentID: 4, Amount: 10, Kind: "tip", Method: "card"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc = NewService(&fakeRepo{err: fmt.Errorf("%w: Create - appointment 4", transactionRepo.ErrUnknownAppointment)}, time.UTC, nopLogger{})
	_, err = svc.Create(context.Background(), &models.CreateRequest{AppointmentID: 4, Amount: 10, Kind: "payment", Method: "cash"})
	assert.ErrorIs(t, err, ErrUnknownAppointment)

	svc = NewService(&fakeRepo{err: errors.New("db down")}, time.UTC, nopLogger{})
	_, err = svc.Create(context.Background(), &models.CreateRequest{AppointmentID: 4, Amount: 10, Kind: "payment", Method: "cash"})
	assert.ErrorIs(t, err, ErrInternal)
}
