package passbook

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// GetPassbookInput is the Huma input for fetching a single passbook.
type GetPassbookInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business the passbook belongs to"`
	PassbookID    int64  `path:"passbookID" doc:"Passbook ID"`
}

// GetPassbookOutput is the Huma output for fetching a single passbook.
type GetPassbookOutput struct {
	Body Passbook
}

// passbookGetter is the interface for fetching one passbook.
type passbookGetter interface {
	Get(ctx context.Context, userID int64, businessID int64, id int64) (*service.Passbook, error)
}

// GetPassbookHandler handles GET /v1/passbooks/{businessID}/{passbookID}.
type GetPassbookHandler struct {
	Identity        identityResolver
	PassbookService passbookGetter
}

// NewGetPassbookHandler creates a new GetPassbookHandler.
func NewGetPassbookHandler(identity identityResolver, svc passbookGetter) *GetPassbookHandler {
	return &GetPassbookHandler{Identity: identity, PassbookService: svc}
}

// Register registers the get passbook endpoint with the Huma API.
func (h *GetPassbookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-passbook",
		Method:      http.MethodGet,
		Path:        "/v1/passbooks/{businessID}/{passbookID}",
		Summary:     "Get a passbook",
		Description: "Returns one of the calling user's passbooks by ID.",
		Tags:        []string{"Passbooks"},
	}, h.handle)
}

func (h *GetPassbookHandler) handle(ctx context.Context, input *GetPassbookInput) (*GetPassbookOutput, error) {
	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	found, err := h.PassbookService.Get(ctx, caller.ID, input.BusinessID, input.PassbookID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("passbook not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get passbook", err)
	}

	return &GetPassbookOutput{Body: toAPIPassbook(*found)}, nil
}
