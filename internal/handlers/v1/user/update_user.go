package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// UpdateUserBody is the request body for replacing a user's profile.
// Username and password are not updatable through this endpoint.
type UpdateUserBody struct {
	Name  string  `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Display name"`
	Email string  `json:"email" required:"true" format:"email" doc:"Email address"`
	Phone *string `json:"phone,omitempty" maxLength:"20" doc:"Phone number"`
	Photo *string `json:"photo,omitempty" maxLength:"500" doc:"Avatar URL"`
}

// UpdateUserInput is the Huma input for replacing a user's profile.
type UpdateUserInput struct {
	UserID int64 `path:"userID" doc:"User ID"`
	Body   UpdateUserBody
}

// UpdateUserOutput is the Huma output for replacing a user's profile.
type UpdateUserOutput struct {
	Body User
}

// userUpdater is the interface for replacing user profiles.
type userUpdater interface {
	Update(ctx context.Context, id int64, update service.UserUpdate) (*service.User, error)
}

// UpdateUserHandler handles PUT /v1/users/{userID}.
type UpdateUserHandler struct {
	UserService userUpdater
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{UserService: svc}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPut,
		Path:        "/v1/users/{userID}",
		Summary:     "Update a user",
		Description: "Replaces the mutable profile fields of a user.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	updated, err := h.UserService.Update(ctx, input.UserID, service.UserUpdate{
		Name:  input.Body.Name,
		Email: input.Body.Email,
		Phone: input.Body.Phone,
		Photo: input.Body.Photo,
	})
	if errors.Is(err, service.ErrNotFound) {
		return nil, huma.Error404NotFound("user not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update user", err)
	}

	return &UpdateUserOutput{Body: toAPIUser(*updated)}, nil
}
