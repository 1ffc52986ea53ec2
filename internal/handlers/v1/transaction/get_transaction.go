package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching a single transaction.
type GetTransactionInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	TransactionID int64  `path:"transactionID" doc:"Transaction ID"`
}

// GetTransactionOutput is the Huma output for fetching a single transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching one transaction.
type transactionGetter interface {
	Get(ctx context.Context, userID int64, id int64) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{transactionID}.
type GetTransactionHandler struct {
	Identity           identityResolver
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(identity identityResolver, svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{Identity: identity, TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{transactionID}",
		Summary:     "Get a transaction",
		Description: "Returns a transaction from one of the calling user's passbooks.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	found, err := h.TransactionService.Get(ctx, caller.ID, input.TransactionID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction", err)
	}

	return &GetTransactionOutput{Body: toAPITransaction(*found)}, nil
}
