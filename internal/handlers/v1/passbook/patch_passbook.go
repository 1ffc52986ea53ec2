package passbook

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// PatchPassbookBody is the request body for partially updating a passbook.
// Absent fields are left unchanged; unknown fields are ignored.
type PatchPassbookBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name        *string `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"Passbook name"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
}

// PatchPassbookInput is the Huma input for partially updating a passbook.
type PatchPassbookInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business the passbook belongs to"`
	PassbookID    int64  `path:"passbookID" doc:"Passbook ID"`
	Body          PatchPassbookBody
}

// PatchPassbookOutput is the Huma output for partially updating a passbook.
type PatchPassbookOutput struct {
	Body Passbook
}

// passbookPatcher is the interface for partially updating passbooks.
type passbookPatcher interface {
	Patch(ctx context.Context, userID int64, businessID int64, id int64, patch service.PassbookPatch) (*service.Passbook, error)
}

// PatchPassbookHandler handles PATCH /v1/passbooks/{businessID}/{passbookID}.
type PatchPassbookHandler struct {
	Identity        identityResolver
	PassbookService passbookPatcher
}

// NewPatchPassbookHandler creates a new PatchPassbookHandler.
func NewPatchPassbookHandler(identity identityResolver, svc passbookPatcher) *PatchPassbookHandler {
	return &PatchPassbookHandler{Identity: identity, PassbookService: svc}
}

// Register registers the patch passbook endpoint with the Huma API.
func (h *PatchPassbookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "patch-passbook",
		Method:      http.MethodPatch,
		Path:        "/v1/passbooks/{businessID}/{passbookID}",
		Summary:     "Partially update a passbook",
		Description: "Updates only the provided fields of one of the calling user's passbooks.",
		Tags:        []string{"Passbooks"},
	}, h.handle)
}

func (h *PatchPassbookHandler) handle(ctx context.Context, input *PatchPassbookInput) (*PatchPassbookOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	patched, err := h.PassbookService.Patch(ctx, caller.ID, input.BusinessID, input.PassbookID, service.PassbookPatch{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	})
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("passbook not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to patch passbook", err)
	}

	return &PatchPassbookOutput{Body: toAPIPassbook(*patched)}, nil
}
