package passbook

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// UpdatePassbookBody is the request body for replacing a passbook.
type UpdatePassbookBody struct {
	Name        string  `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Passbook name"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
}

// UpdatePassbookInput is the Huma input for replacing a passbook.
type UpdatePassbookInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business the passbook belongs to"`
	PassbookID    int64  `path:"passbookID" doc:"Passbook ID"`
	Body          UpdatePassbookBody
}

// UpdatePassbookOutput is the Huma output for replacing a passbook.
type UpdatePassbookOutput struct {
	Body Passbook
}

// passbookUpdater is the interface for replacing passbooks.
type passbookUpdater interface {
	Update(ctx context.Context, userID int64, businessID int64, id int64, update service.PassbookUpdate) (*service.Passbook, error)
}

// UpdatePassbookHandler handles PUT /v1/passbooks/{businessID}/{passbookID}.
type UpdatePassbookHandler struct {
	Identity        identityResolver
	PassbookService passbookUpdater
}

// NewUpdatePassbookHandler creates a new UpdatePassbookHandler.
func NewUpdatePassbookHandler(identity identityResolver, svc passbookUpdater) *UpdatePassbookHandler {
	return &UpdatePassbookHandler{Identity: identity, PassbookService: svc}
}

// Register registers the update passbook endpoint with the Huma API.
func (h *UpdatePassbookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-passbook",
		Method:      http.MethodPut,
		Path:        "/v1/passbooks/{businessID}/{passbookID}",
		Summary:     "Replace a passbook",
		Description: "Replaces every mutable field of one of the calling user's passbooks.",
		Tags:        []string{"Passbooks"},
	}, h.handle)
}

func (h *UpdatePassbookHandler) handle(ctx context.Context, input *UpdatePassbookInput) (*UpdatePassbookOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	updated, err := h.PassbookService.Update(ctx, caller.ID, input.BusinessID, input.PassbookID, service.PassbookUpdate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	})
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("passbook not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update passbook", err)
	}

	return &UpdatePassbookOutput{Body: toAPIPassbook(*updated)}, nil
}
