package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          int64   `json:"id" doc:"Transaction ID"`
	PassbookID  int64   `json:"passbook_id" doc:"Owning passbook ID"`
	TxnType     string  `json:"txn_type" doc:"Either debit or credit"`
	Amount      string  `json:"amount" doc:"Decimal amount"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
	TxnDate     string  `json:"txn_date" doc:"RFC3339 transaction date"`
	ReferenceNo *string `json:"reference_no,omitempty" doc:"External reference number"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt   string  `json:"updated_at" doc:"RFC3339 last update time"`
}

func toAPITransaction(t service.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		PassbookID:  t.PassbookID,
		TxnType:     t.TxnType,
		Amount:      t.Amount.String(),
		Description: t.Description,
		TxnDate:     t.TxnDate.Format(time.RFC3339),
		ReferenceNo: t.ReferenceNo,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// parseAmount parses a decimal amount string and requires it to be positive.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "amount must be positive")
	}
	return amount, nil
}

// identityResolver turns an Authorization header into the calling user.
type identityResolver interface {
	Authenticate(ctx context.Context, authorization string) (*service.User, error)
}

func authenticate(ctx context.Context, identity identityResolver, authorization string) (*service.User, error) {
	caller, err := identity.Authenticate(ctx, authorization)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid or missing bearer token", err)
	}
	return caller, nil
}
