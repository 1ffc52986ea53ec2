package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// UpdateBusinessBody is the request body for replacing a business.
type UpdateBusinessBody struct {
	Name        string  `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Business name"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
	Industry    string  `json:"industry" required:"true" minLength:"1" doc:"Industry label"`
	FoundedYear int     `json:"founded_year" required:"true" minimum:"1800" maximum:"2100" doc:"Year the business was founded"`
	Revenue     float64 `json:"revenue" minimum:"0" doc:"Annual revenue"`
	Employees   int     `json:"employees" required:"true" minimum:"1" doc:"Number of employees"`
	Location    string  `json:"location" required:"true" minLength:"1" doc:"Location"`
}

// UpdateBusinessInput is the Huma input for replacing a business.
type UpdateBusinessInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business ID"`
	Body          UpdateBusinessBody
}

// UpdateBusinessOutput is the Huma output for replacing a business.
type UpdateBusinessOutput struct {
	Body Business
}

// businessUpdater is the interface for replacing businesses.
type businessUpdater interface {
	Update(ctx context.Context, userID int64, id int64, update service.BusinessUpdate) (*service.Business, error)
}

// UpdateBusinessHandler handles PUT /v1/businesses/{businessID}.
type UpdateBusinessHandler struct {
	Identity        identityResolver
	BusinessService businessUpdater
}

// NewUpdateBusinessHandler creates a new UpdateBusinessHandler.
func NewUpdateBusinessHandler(identity identityResolver, svc businessUpdater) *UpdateBusinessHandler {
	return &UpdateBusinessHandler{Identity: identity, BusinessService: svc}
}

// Register registers the update business endpoint with the Huma API.
func (h *UpdateBusinessHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-business",
		Method:      http.MethodPut,
		Path:        "/v1/businesses/{businessID}",
		Summary:     "Replace a business",
		Description: "Replaces every mutable field of one of the calling user's businesses.",
		Tags:        []string{"Businesses"},
	}, h.handle)
}

func (h *UpdateBusinessHandler) handle(ctx context.Context, input *UpdateBusinessInput) (*UpdateBusinessOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	updated, err := h.BusinessService.Update(ctx, caller.ID, input.BusinessID, service.BusinessUpdate{
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
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update business", err)
	}

	return &UpdateBusinessOutput{Body: toAPIBusiness(*updated)}, nil
}
