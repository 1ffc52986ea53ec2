package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
)

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	Name     string  `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Display name"`
	Username string  `json:"username" required:"true" minLength:"3" maxLength:"50" doc:"Unique login name"`
	Password string  `json:"password" required:"true" minLength:"6" maxLength:"200" doc:"Plaintext password, stored only as a hash"`
	Email    string  `json:"email" required:"true" format:"email" doc:"Email address"`
	Phone    *string `json:"phone,omitempty" maxLength:"20" doc:"Phone number"`
	Photo    *string `json:"photo,omitempty" maxLength:"500" doc:"Avatar URL"`
}

// RegisterInput is the Huma input for creating an account.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterResponseBody is the response body for creating an account.
type RegisterResponseBody struct {
	AccessToken string `json:"access_token" doc:"Bearer token for the new account"`
	TokenType   string `json:"token_type" doc:"Always \"bearer\""`
}

// RegisterOutput is the Huma output for creating an account.
type RegisterOutput struct {
	Body RegisterResponseBody
}

// registrar is the interface for creating accounts.
type registrar interface {
	Register(ctx context.Context, register service.UserRegister) (*service.AuthResult, error)
}

// RegisterHandler handles POST /v1/register.
type RegisterHandler struct {
	UserService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

// Register registers the register endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/v1/register",
		Summary:     "Register",
		Description: "Creates a new account and returns a bearer token for it.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)

	result, err := h.UserService.Register(ctx, service.UserRegister{
		Name:     input.Body.Name,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Email:    input.Body.Email,
		Phone:    input.Body.Phone,
		Photo:    input.Body.Photo,
	})
	if errors.Is(err, service.ErrUsernameTaken) {
		return nil, huma.Error409Conflict("username already exists")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register", err)
	}

	if logData != nil {
		logData.AddData("userID", result.User.ID)
	}

	return &RegisterOutput{
		Body: RegisterResponseBody{
			AccessToken: result.Token,
			TokenType:   "bearer",
		},
	}, nil
}
