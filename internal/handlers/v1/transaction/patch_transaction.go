package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// PatchTransactionBody is the request body for partially updating a
// transaction. Only the description is patchable; absent fields are left
// unchanged and unknown fields are ignored.
type PatchTransactionBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
}

// PatchTransactionInput is the Huma input for partially updating a transaction.
type PatchTransactionInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	TransactionID int64  `path:"transactionID" doc:"Transaction ID"`
	Body          PatchTransactionBody
}

// PatchTransactionOutput is the Huma output for partially updating a transaction.
type PatchTransactionOutput struct {
	Body Transaction
}

// transactionPatcher is the interface for partially updating transactions.
type transactionPatcher interface {
	Patch(ctx context.Context, userID int64, id int64, patch service.TransactionPatch) (*service.Transaction, error)
}

// PatchTransactionHandler handles PATCH /v1/transactions/{transactionID}.
type PatchTransactionHandler struct {
	Identity           identityResolver
	TransactionService transactionPatcher
}

// NewPatchTransactionHandler creates a new PatchTransactionHandler.
func NewPatchTransactionHandler(identity identityResolver, svc transactionPatcher) *PatchTransactionHandler {
	return &PatchTransactionHandler{Identity: identity, TransactionService: svc}
}

// Register registers the patch transaction endpoint with the Huma API.
func (h *PatchTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "patch-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{transactionID}",
		Summary:     "Partially update a transaction",
		Description: "Updates the description of a transaction in one of the calling user's passbooks.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *PatchTransactionHandler) handle(ctx context.Context, input *PatchTransactionInput) (*PatchTransactionOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	patched, err := h.TransactionService.Patch(ctx, caller.ID, input.TransactionID, service.TransactionPatch{
		Description: input.Body.Description,
	})
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("transaction not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to patch transaction", err)
	}

	return &PatchTransactionOutput{Body: toAPITransaction(*patched)}, nil
}
