package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/storage/transaction"
)

// Transaction types accepted on create and update.
const (
	TxnTypeDebit  = "debit"
	TxnTypeCredit = "credit"
)

// Transaction represents a debit or credit entry in the service layer.
type Transaction struct {
	ID          int64
	PassbookID  int64
	TxnType     string
	Amount      decimal.Decimal
	Description *string
	TxnDate     time.Time
	ReferenceNo *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionCreate carries the fields for creating a transaction. A zero
// TxnDate is replaced with the current time.
type TransactionCreate struct {
	PassbookID  int64
	TxnType     string
	Amount      decimal.Decimal
	Description *string
	TxnDate     time.Time
	ReferenceNo *string
}

// TransactionUpdate replaces the mutable value fields. The passbook the
// transaction belongs to cannot be changed.
type TransactionUpdate struct {
	TxnType     string
	Amount      decimal.Decimal
	Description *string
	TxnDate     time.Time
	ReferenceNo *string
}

// TransactionPatch carries optional fields; nil means "leave unchanged".
type TransactionPatch struct {
	Description *string
}

// TransactionListFilter specifies listing parameters.
type TransactionListFilter struct {
	PassbookID *int64
	Skip       int
	Limit      int
}

// TransactionStats is the aggregate overview across all transactions.
type TransactionStats struct {
	TotalTransactions int64
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:          row.ID,
		PassbookID:  row.PassbookID,
		TxnType:     row.TxnType,
		Amount:      row.Amount,
		Description: row.Description,
		TxnDate:     row.TxnDate,
		ReferenceNo: row.ReferenceNo,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
