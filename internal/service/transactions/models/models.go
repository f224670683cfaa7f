package models

import (
	"errors"
	"strings"
	"time"

	"github.com/inkline/studio/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("from must not be after to")
)

// ListRequest фильтр списка платежей; даты включительно
type ListRequest struct {
	From *string
	To   *string
}

// ToDomainFilter конвертирует request в domain фильтр в часовом поясе студии.
// To превращается в полуоткрытую границу: начало следующего дня
func (r *ListRequest) ToDomainFilter(loc *time.Location) (domain.TransactionsFilter, error) {
	var filter domain.TransactionsFilter

	if r.From != nil {
		from, err := time.ParseInLocation(domain.DateFormat, *r.From, loc)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := time.ParseInLocation(domain.DateFormat, *r.To, loc)
		if err != nil {
			return filter, ErrInvalidDate
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, ErrInvalidPeriod
	}

	return filter, nil
}

// CreateRequest запрос на запись платежа
type CreateRequest struct {
	AppointmentID int64   `json:"appointmentId" validate:"required,gt=0"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Kind          string  `json:"kind" validate:"required,oneof=deposit payment refund"`
	Method        string  `json:"method" validate:"required,oneof=card cash"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateRequest) ToDomain() *domain.Transaction {
	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &domain.Transaction{
		AppointmentID: r.AppointmentID,
		Amount:        r.Amount,
		Currency:      currency,
		Kind:          domain.TransactionKind(r.Kind),
		Method:        domain.PaymentMethod(r.Method),
	}
}

// TransactionResponse ответ с данными платежа
type TransactionResponse struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Kind          string    `json:"kind"`
	Method        string    `json:"method"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionListResponse ответ со списком платежей и итогом
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        float64               `json:"total"` // возвраты вычитаются
}

// FromDomainTransaction конвертирует domain модель в DTO
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:            t.ID,
		AppointmentID: t.AppointmentID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Kind:          string(t.Kind),
		Method:        string(t.Method),
		CreatedAt:     t.CreatedAt,
	}
}

// FromDomainTransactionList конвертирует список и считает итог
func FromDomainTransactionList(list []*domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(list)),
	}

	for _, t := range list {
		if item := FromDomainTransaction(t); item != nil {
			resp.Transactions = append(resp.Transactions, *item)
			resp.Total += t.SignedAmount()
		}
	}

	return resp
}
