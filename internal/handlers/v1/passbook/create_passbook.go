package passbook

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// CreatePassbookBody is the request body for creating a passbook.
type CreatePassbookBody struct {
	Name        string  `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Passbook name"`
	Description *string `json:"description,omitempty" maxLength:"500" doc:"Free-form description"`
}

// CreatePassbookInput is the Huma input for creating a passbook.
type CreatePassbookInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business the passbook belongs to"`
	Body          CreatePassbookBody
}

// CreatePassbookOutput is the Huma output for creating a passbook.
type CreatePassbookOutput struct {
	Status int
	Body   Passbook
}

// passbookCreator is the interface for creating passbooks.
type passbookCreator interface {
	Create(ctx context.Context, userID int64, businessID int64, create service.PassbookCreate) (*service.Passbook, error)
}

// CreatePassbookHandler handles POST /v1/passbooks/{businessID}.
type CreatePassbookHandler struct {
	Identity        identityResolver
	PassbookService passbookCreator
}

// NewCreatePassbookHandler creates a new CreatePassbookHandler.
func NewCreatePassbookHandler(identity identityResolver, svc passbookCreator) *CreatePassbookHandler {
	return &CreatePassbookHandler{Identity: identity, PassbookService: svc}
}

// Register registers the create passbook endpoint with the Huma API.
func (h *CreatePassbookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-passbook",
		Method:      http.MethodPost,
		Path:        "/v1/passbooks/{businessID}",
		Summary:     "Create a passbook",
		Description: "Creates a new passbook under one of the calling user's businesses.",
		Tags:        []string{"Passbooks"},
	}, h.handle)
}

func (h *CreatePassbookHandler) handle(ctx context.Context, input *CreatePassbookInput) (*CreatePassbookOutput, error) {
	logData := logging.GetLogData(ctx)

	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createPassbookMs")
	}
	created, err := h.PassbookService.Create(ctx, caller.ID, input.BusinessID, service.PassbookCreate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("business not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create passbook", err)
	}

	if logData != nil {
		logData.AddData("passbookID", created.ID)
	}

	return &CreatePassbookOutput{
		Status: http.StatusCreated,
		Body:   toAPIPassbook(*created),
	}, nil
}
