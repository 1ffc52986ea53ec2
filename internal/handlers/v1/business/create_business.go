package business

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// CreateBusinessBody is the request body for creating a business.
type CreateBusinessBody struct {
	Name        string  `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Business name"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
	Industry    string  `json:"industry" required:"true" minLength:"1" doc:"Industry label"`
	FoundedYear int     `json:"founded_year" required:"true" minimum:"1800" maximum:"2100" doc:"Year the business was founded"`
	Revenue     float64 `json:"revenue" minimum:"0" doc:"Annual revenue, defaults to 0"`
	Employees   int     `json:"employees" required:"true" minimum:"1" doc:"Number of employees"`
	Location    string  `json:"location" required:"true" minLength:"1" doc:"Location"`
}

// CreateBusinessInput is the Huma input for creating a business.
type CreateBusinessInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	Body          CreateBusinessBody
}

// CreateBusinessOutput is the Huma output for creating a business.
type CreateBusinessOutput struct {
	Status int
	Body   Business
}

// businessCreator is the interface for creating businesses.
type businessCreator interface {
	Create(ctx context.Context, userID int64, create service.BusinessCreate) (*service.Business, error)
}

// CreateBusinessHandler handles POST /v1/businesses.
type CreateBusinessHandler struct {
	Identity        identityResolver
	BusinessService businessCreator
}

// NewCreateBusinessHandler creates a new CreateBusinessHandler.
func NewCreateBusinessHandler(identity identityResolver, svc businessCreator) *CreateBusinessHandler {
	return &CreateBusinessHandler{Identity: identity, BusinessService: svc}
}

// Register registers the create business endpoint with the Huma API.
func (h *CreateBusinessHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-business",
		Method:      http.MethodPost,
		Path:        "/v1/businesses",
		Summary:     "Create a business",
		Description: "Creates a new business owned by the calling user.",
		Tags:        []string{"Businesses"},
	}, h.handle)
}

func (h *CreateBusinessHandler) handle(ctx context.Context, input *CreateBusinessInput) (*CreateBusinessOutput, error) {
	logData := logging.GetLogData(ctx)

	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBusinessMs")
	}
	created, err := h.BusinessService.Create(ctx, caller.ID, service.BusinessCreate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Industry:    input.Body.Industry,
		FoundedYear: input.Body.FoundedYear,
		Revenue:     input.Body.Revenue,
		Employees:   input.Body.Employees,
		Location:    input.Body.Location,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create business", err)
	}

	if logData != nil {
		logData.AddData("businessID", created.ID)
	}

	return &CreateBusinessOutput{
		Status: http.StatusCreated,
		Body:   toAPIBusiness(*created),
	}, nil
}
