package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Transaction represents a single debit or credit entry in a passbook.
type Transaction struct {
	ID          int64           `db:"id"`
	PassbookID  int64           `db:"passbook_id"`
	TxnType     string          `db:"txn_type"`
	Amount      decimal.Decimal `db:"amount"`
	Description *string         `db:"description"`
	TxnDate     time.Time       `db:"txn_date"`
	ReferenceNo *string         `db:"reference_no"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	PassbookID  int64
	TxnType     string
	Amount      decimal.Decimal
	Description *string
	TxnDate     time.Time // defaults to now if zero
	ReferenceNo *string
}

// TransactionUpdate replaces the mutable value fields. The passbook foreign
// key is fixed at creation time.
type TransactionUpdate struct {
	TxnType     string
	Amount      decimal.Decimal
	Description *string
	TxnDate     time.Time
	ReferenceNo *string
}

// TransactionPatch applies only the fields that are set.
type TransactionPatch struct {
	Description omit.Val[string]
}

// TransactionFilter specifies filters for listing transactions. UserID scopes
// results through the owning passbook.
type TransactionFilter struct {
	UserID     int64
	PassbookID *int64
	Skip       int
	Limit      int
}

// TransactionStats is the aggregate overview across all transactions.
type TransactionStats struct {
	TotalTransactions int64
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	FindByID(ctx context.Context, id int64, userID int64) (*Transaction, error)
	Update(ctx context.Context, id int64, userID int64, update *TransactionUpdate) (*Transaction, error)
	Patch(ctx context.Context, id int64, userID int64, patch *TransactionPatch) (*Transaction, error)
	Delete(ctx context.Context, id int64, userID int64) (bool, error)
	Stats(ctx context.Context) (*TransactionStats, error)
}
