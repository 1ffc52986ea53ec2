package passbook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// ListPassbooksInput is the Huma input for listing passbooks.
type ListPassbooksInput struct {
	Authorization string `header:"Authorization" required:"true" doc:"Bearer token"`
	BusinessID    int64  `path:"businessID" doc:"Business the passbooks belong to"`
	Skip          int    `query:"skip" minimum:"0" default:"0" doc:"Number of records to skip"`
	Limit         int    `query:"limit" minimum:"1" maximum:"100" default:"10" doc:"Page size"`
}

// ListPassbooksResponseBody is the response body for listing passbooks.
type ListPassbooksResponseBody struct {
	Passbooks []Passbook `json:"passbooks" doc:"Page of passbooks under the business"`
}

// ListPassbooksOutput is the Huma output for listing passbooks.
type ListPassbooksOutput struct {
	Body ListPassbooksResponseBody
}

// passbookLister is the interface for listing passbooks.
type passbookLister interface {
	List(ctx context.Context, userID int64, businessID int64, filter service.PassbookListFilter) ([]service.Passbook, error)
}

// ListPassbooksHandler handles GET /v1/passbooks/{businessID}.
type ListPassbooksHandler struct {
	Identity        identityResolver
	PassbookService passbookLister
}

// NewListPassbooksHandler creates a new ListPassbooksHandler.
func NewListPassbooksHandler(identity identityResolver, svc passbookLister) *ListPassbooksHandler {
	return &ListPassbooksHandler{Identity: identity, PassbookService: svc}
}

// Register registers the list passbooks endpoint with the Huma API.
func (h *ListPassbooksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-passbooks",
		Method:      http.MethodGet,
		Path:        "/v1/passbooks/{businessID}",
		Summary:     "List passbooks",
		Description: "Returns the calling user's passbooks under a business.",
		Tags:        []string{"Passbooks"},
	}, h.handle)
}

func (h *ListPassbooksHandler) handle(ctx context.Context, input *ListPassbooksInput) (*ListPassbooksOutput, error) {
	logData := logging.GetLogData(ctx)

	caller, err := authenticate(ctx, h.Identity, input.Authorization)
	if err != nil {
		return nil, err
	}

	passbooks, err := h.PassbookService.List(ctx, caller.ID, input.BusinessID, service.PassbookListFilter{
		Skip:  input.Skip,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list passbooks", err)
	}

	if logData != nil {
		logData.AddData("passbookCount", len(passbooks))
	}

	resp := ListPassbooksResponseBody{
		Passbooks: make([]Passbook, len(passbooks)),
	}
	for i, p := range passbooks {
		resp.Passbooks[i] = toAPIPassbook(p)
	}

	return &ListPassbooksOutput{Body: resp}, nil
}
