package business

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// ListBusinessesInput is the Huma input for listing businesses.
type ListBusinessesInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	Industry      string `query:"industry" doc:"Case-insensitive industry filter"`
	Skip          int    `query:"skip" minimum:"0" default:"0" doc:"Number of records to skip"`
	Limit         int    `query:"limit" minimum:"1" maximum:"100" default:"10" doc:"Page size"`
}

// ListBusinessesResponseBody is the response body for listing businesses.
type ListBusinessesResponseBody struct {
	Businesses []Business `json:"businesses" doc:"Page of businesses owned by the caller"`
}

// ListBusinessesOutput is the Huma output for listing businesses.
type ListBusinessesOutput struct {
	Body ListBusinessesResponseBody
}

// businessLister is the interface for listing businesses.
type businessLister interface {
	List(ctx context.Context, userID int64, filter service.BusinessListFilter) ([]service.Business, error)
}

// ListBusinessesHandler handles GET /v1/businesses.
type ListBusinessesHandler struct {
	Identity        identityResolver
	BusinessService businessLister
}

// NewListBusinessesHandler creates a new ListBusinessesHandler.
func NewListBusinessesHandler(identity identityResolver, svc businessLister) *ListBusinessesHandler {
	return &ListBusinessesHandler{Identity: identity, BusinessService: svc}
}

// Register registers the list businesses endpoint with the Huma API.
func (h *ListBusinessesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-businesses",
		Method:      http.MethodGet,
		Path:        "/v1/businesses",
		Summary:     "List businesses",
		Description: "Returns the calling user's businesses, optionally filtered by industry.",
		Tags:        []string{"Businesses"},
	}, h.handle)
}

func (h *ListBusinessesHandler) handle(ctx context.Context, input *ListBusinessesInput) (*ListBusinessesOutput, error) {
	logData := logging.GetLogData(ctx)

	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	filter := service.BusinessListFilter{
		Skip:  input.Skip,
		Limit: input.Limit,
	}
	if input.Industry != "" {
		filter.Industry = &input.Industry
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBusinessesMs")
	}
	businesses, err := h.BusinessService.List(ctx, caller.ID, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list businesses", err)
	}

	if logData != nil {
		logData.AddData("businessCount", len(businesses))
	}

	resp := ListBusinessesResponseBody{
		Businesses: make([]Business, len(businesses)),
	}
	for i, b := range businesses {
		resp.Businesses[i] = toAPIBusiness(b)
	}

	return &ListBusinessesOutput{Body: resp}, nil
}
