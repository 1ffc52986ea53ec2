package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// DeleteBusinessInput is the Huma input for deleting a business.
type DeleteBusinessInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business ID"`
}

// DeleteBusinessOutput is the Huma output for deleting a business.
type DeleteBusinessOutput struct {
	Status int
}

// businessDeleter is the interface for deleting businesses.
type businessDeleter interface {
	Delete(ctx context.Context, userID int64, id int64) error
}

// DeleteBusinessHandler handles DELETE /v1/businesses/{businessID}.
type DeleteBusinessHandler struct {
	Identity        identityResolver
	BusinessService businessDeleter
}

// NewDeleteBusinessHandler creates a new DeleteBusinessHandler.
func NewDeleteBusinessHandler(identity identityResolver, svc businessDeleter) *DeleteBusinessHandler {
	return &DeleteBusinessHandler{Identity: identity, BusinessService: svc}
}

// Register registers the delete business endpoint with the Huma API.
func (h *DeleteBusinessHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-business",
		Method:        http.MethodDelete,
		Path:          "/v1/businesses/{businessID}",
		Summary:       "Delete a business",
		Description:   "Deletes one of the calling user's businesses.",
		Tags:          []string{"Businesses"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteBusinessHandler) handle(ctx context.Context, input *DeleteBusinessInput) (*DeleteBusinessOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	err = h.BusinessService.Delete(ctx, caller.ID, input.BusinessID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("business not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete business", err)
	}

	return &DeleteBusinessOutput{Status: http.StatusNoContent}, nil
}
