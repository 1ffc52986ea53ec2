package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Login name"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Plaintext password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for logging in.
type LoginResponseBody struct {
	AccessToken string `json:"access_token" doc:"Bearer token"`
	TokenType   string `json:"token_type" doc:"Always \"bearer\""`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginResponseBody
}

// credentialChecker is the interface for verifying credentials.
type credentialChecker interface {
	Login(ctx context.Context, username string, password string) (*service.AuthResult, error)
}

// LoginHandler handles POST /v1/login.
type LoginHandler struct {
	UserService credentialChecker
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc credentialChecker) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/login",
		Summary:     "Log in",
		Description: "Verifies a username and password pair and returns a bearer token.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := h.UserService.Login(ctx, input.Body.Username, input.Body.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, huma.Error401Unauthorized("invalid username or password")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	return &LoginOutput{Body: LoginResponseBody{
		AccessToken: result.Token,
		TokenType:   "bearer",
	}}, nil
}
