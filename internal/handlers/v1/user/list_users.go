package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// ListUsersInput is the Huma input for listing users.
type ListUsersInput struct {
	Skip  int `query:"skip" minimum:"0" default:"0" doc:"Number of records to skip"`
	Limit int `query:"limit" minimum:"1" maximum:"100" default:"10" doc:"Page size"`
}

// ListUsersResponseBody is the response body for listing users.
type ListUsersResponseBody struct {
	Users []User `json:"users" doc:"Page of users"`
}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body ListUsersResponseBody
}

// userLister is the interface for listing users.
type userLister interface {
	List(ctx context.Context, filter service.UserListFilter) ([]service.User, error)
}

// ListUsersHandler handles GET /v1/users.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/v1/users",
		Summary:     "List users",
		Description: "Returns a page of users without credentials.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	users, err := h.UserService.List(ctx, service.UserListFilter{
		Skip:  input.Skip,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list users", err)
	}

	resp := ListUsersResponseBody{
		Users: make([]User, len(users)),
	}
	for i, u := range users {
		resp.Users[i] = toAPIUser(u)
	}

	return &ListUsersOutput{Body: resp}, nil
}
