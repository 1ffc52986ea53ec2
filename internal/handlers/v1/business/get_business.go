package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// GetBusinessInput is the Huma input for fetching a single business.
type GetBusinessInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business ID"`
}

// GetBusinessOutput is the Huma output for fetching a single business.
type GetBusinessOutput struct {
	Body Business
}

// businessGetter is the interface for fetching one business.
type businessGetter interface {
	Get(ctx context.Context, userID int64, id int64) (*service.Business, error)
}

// GetBusinessHandler handles GET /v1/businesses/{businessID}.
type GetBusinessHandler struct {
	Identity        identityResolver
	BusinessService businessGetter
}

// NewGetBusinessHandler creates a new GetBusinessHandler.
func NewGetBusinessHandler(identity identityResolver, svc businessGetter) *GetBusinessHandler {
	return &GetBusinessHandler{Identity: identity, BusinessService: svc}
}

// Register registers the get business endpoint with the Huma API.
func (h *GetBusinessHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-business",
		Method:      http.MethodGet,
		Path:        "/v1/businesses/{businessID}",
		Summary:     "Get a business",
		Description: "Returns one of the calling user's businesses by ID.",
		Tags:        []string{"Businesses"},
	}, h.handle)
}

func (h *GetBusinessHandler) handle(ctx context.Context, input *GetBusinessInput) (*GetBusinessOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	found, err := h.BusinessService.Get(ctx, caller.ID, input.BusinessID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("business not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get business", err)
	}

	return &GetBusinessOutput{Body: toAPIBusiness(*found)}, nil
}
