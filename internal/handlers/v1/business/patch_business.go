package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// PatchBusinessBody is the request body for partially updating a business.
// Absent fields are left unchanged; unknown fields are ignored.
type PatchBusinessBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name        *string  `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"Business name"`
	Description *string  `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
	Industry    *string  `json:"industry,omitempty" minLength:"1" doc:"Industry label"`
	FoundedYear *int     `json:"founded_year,omitempty" minimum:"1800" maximum:"2100" doc:"Year the business was founded"`
	Revenue     *float64 `json:"revenue,omitempty" minimum:"0" doc:"Annual revenue"`
	Employees   *int     `json:"employees,omitempty" minimum:"1" doc:"Number of employees"`
	Location    *string  `json:"location,omitempty" minLength:"1" doc:"Location"`
}

// PatchBusinessInput is the Huma input for partially updating a business.
type PatchBusinessInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business ID"`
	Body          PatchBusinessBody
}

// PatchBusinessOutput is the Huma output for partially updating a business.
type PatchBusinessOutput struct {
	Body Business
}

// businessPatcher is the interface for partially updating businesses.
type businessPatcher interface {
	Patch(ctx context.Context, userID int64, id int64, patch service.BusinessPatch) (*service.Business, error)
}

// PatchBusinessHandler handles PATCH /v1/businesses/{businessID}.
type PatchBusinessHandler struct {
	Identity        identityResolver
	BusinessService businessPatcher
}

// NewPatchBusinessHandler creates a new PatchBusinessHandler.
func NewPatchBusinessHandler(identity identityResolver, svc businessPatcher) *PatchBusinessHandler {
	return &PatchBusinessHandler{Identity: identity, BusinessService: svc}
}

// Register registers the patch business endpoint with the Huma API.
func (h *PatchBusinessHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "patch-business",
		Method:      http.MethodPatch,
		Path:        "/v1/businesses/{businessID}",
		Summary:     "Partially update a business",
		Description: "Updates only the provided fields of one of the calling user's businesses.",
		Tags:        []string{"Businesses"},
	}, h.handle)
}

func (h *PatchBusinessHandler) handle(ctx context.Context, input *PatchBusinessInput) (*PatchBusinessOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	patched, err := h.BusinessService.Patch(ctx, caller.ID, input.BusinessID, service.BusinessPatch{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Industry:    input.Body.Industry,
		FoundedYear: input.Body.FoundedYear,
		Revenue:     input.Body.Revenue,
		Employees:   input.Body.Employees,
		Location:    input.Body.Location,
	})
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("business not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to patch business", err)
	}

	return &PatchBusinessOutput{Body: toAPIBusiness(*patched)}, nil
}
