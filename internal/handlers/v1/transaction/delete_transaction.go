package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	TransactionID int64  `path:"transactionID" doc:"Transaction ID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	Delete(ctx context.Context, userID int64, id int64) error
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{transactionID}.
type DeleteTransactionHandler struct {
	Identity           identityResolver
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(identity identityResolver, svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Identity: identity, TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{transactionID}",
		Summary:       "Delete a transaction",
		Description:   "Deletes a transaction from one of the calling user's passbooks.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	err = h.TransactionService.Delete(ctx, caller.ID, input.TransactionID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
