package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// UpdateTransactionBody is the request body for replacing a transaction's
// value fields. The passbook a transaction belongs to cannot be changed.
type UpdateTransactionBody struct {
	TxnType     string  `json:"txn_type" required:"true" enum:"debit,credit" doc:"Either debit or credit"`
	Amount      string  `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
	TxnDate     string  `json:"txn_date" required:"true" format:"date-time" doc:"RFC3339 transaction date"`
	ReferenceNo *string `json:"reference_no,omitempty" maxLength:"100" doc:"External reference number"`
}

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	TransactionID int64  `path:"transactionID" doc:"Transaction ID"`
	Body          UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for replacing transactions.
type transactionUpdater interface {
	Update(ctx context.Context, userID int64, id int64, update service.TransactionUpdate) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transactions/{transactionID}.
type UpdateTransactionHandler struct {
	Identity           identityResolver
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(identity identityResolver, svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Identity: identity, TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{transactionID}",
		Summary:     "Replace a transaction",
		Description: "Replaces the value fields of a transaction in one of the calling user's passbooks.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return nil, err
	}
	txnDate, err := time.Parse(time.RFC3339, input.Body.TxnDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid txn_date", err)
	}

	updated, err := h.TransactionService.Update(ctx, caller.ID, input.TransactionID, service.TransactionUpdate{
		TxnType:     input.Body.TxnType,
		Amount:      amount,
		Description: input.Body.Description,
		TxnDate:     txnDate,
		ReferenceNo: input.Body.ReferenceNo,
	})
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Body: toAPITransaction(*updated)}, nil
}
