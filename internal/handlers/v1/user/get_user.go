package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// GetUserInput is the Huma input for fetching a single user.
type GetUserInput struct {
	UserID int64 `path:"userID" doc:"User ID"`
}

// GetUserOutput is the Huma output for fetching a single user.
type GetUserOutput struct {
	Body User
}

// userGetter is the interface for fetching one user.
type userGetter interface {
	Get(ctx context.Context, id int64) (*service.User, error)
}

// GetUserHandler handles GET /v1/users/{userID}.
type GetUserHandler struct {
	UserService userGetter
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc userGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/v1/users/{userID}",
		Summary:     "Get a user",
		Description: "Returns a user by ID without credentials.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	found, err := h.UserService.Get(ctx, input.UserID)
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("user not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get user", err)
	}

	return &GetUserOutput{Body: toAPIUser(*found)}, nil
}
