package passbook

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// DeletePassbookInput is the Huma input for deleting a passbook.
type DeletePassbookInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business the passbook belongs to"`
	PassbookID    int64  `path:"passbookID" doc:"Passbook ID"`
}

// DeletePassbookOutput is the Huma output for deleting a passbook.
type DeletePassbookOutput struct {
	Status int
}

// passbookDeleter is the interface for deleting passbooks.
type passbookDeleter interface {
	Delete(ctx context.Context, userID int64, businessID int64, id int64) error
}

// DeletePassbookHandler handles DELETE /v1/passbooks/{businessID}/{passbookID}.
type DeletePassbookHandler struct {
	Identity        identityResolver
	PassbookService passbookDeleter
}

// NewDeletePassbookHandler creates a new DeletePassbookHandler.
func NewDeletePassbookHandler(identity identityResolver, svc passbookDeleter) *DeletePassbookHandler {
	return &DeletePassbookHandler{Identity: identity, PassbookService: svc}
}

// Register registers the delete passbook endpoint with the Huma API.
func (h *DeletePassbookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-passbook",
		Method:        http.MethodDelete,
		Path:          "/v1/passbooks/{businessID}/{passbookID}",
		Summary:       "Delete a passbook",
		Description:   "Deletes one of the calling user's passbooks along with every transaction in it.",
		Tags:          []string{"Passbooks"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeletePassbookHandler) handle(ctx context.Context, input *DeletePassbookInput) (*DeletePassbookOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	err = h.PassbookService.Delete(ctx, caller.ID, input.BusinessID, input.PassbookID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("passbook not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete passbook", err)
	}

	return &DeletePassbookOutput{Status: http.StatusNoContent}, nil
}
