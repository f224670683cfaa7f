package domain

import "time"

// TransactionKind is the direction of money movement
type TransactionKind string

const (
	TransactionDeposit TransactionKind = "deposit"
	TransactionPayment TransactionKind = "payment"
	TransactionRefund  TransactionKind = "refund"
)

// PaymentMethod is how the customer paid
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodCash PaymentMethod = "cash"
)

// IsValid reports whether k belongs to the closed kind set
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionDeposit, TransactionPayment, TransactionRefund:
		return true
	}
	return false
}

// IsValid reports whether m belongs to the closed method set
func (m PaymentMethod) IsValid() bool {
	return m == MethodCard || m == MethodCash
}

// Transaction is money recorded against an appointment
type Transaction struct {
	ID            int64
	AppointmentID int64
	Amount        float64
	Currency      string
	Kind          TransactionKind
	Method        PaymentMethod
	CreatedAt     time.Time
}

// SignedAmount returns the amount with refunds negated
func (t *Transaction) SignedAmount() float64 {
	if t.Kind == TransactionRefund {
		return -t.Amount
	}
	return t.Amount
}

// TransactionsFilter фильтр для выборки транзакций
type TransactionsFilter struct {
	From          *time.Time // created_at >= From
	To            *time.Time // created_at < To
	AppointmentID *int64
}
