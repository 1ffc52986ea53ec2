package passbook

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// Passbook is the API response model for a passbook.
type Passbook struct {
	ID          int64   `json:"id" doc:"Passbook ID"`
	BusinessID  int64   `json:"business_id" doc:"Owning business ID"`
	UserID      int64   `json:"user_id" doc:"Owning user ID"`
	Name        string  `json:"name" doc:"Passbook name"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt   string  `json:"updated_at" doc:"RFC3339 last update time"`
}

func toAPIPassbook(p service.Passbook) Passbook {
	return Passbook{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// identityResolver turns an Authorization header into the calling user.
type identityResolver interface {
	Authenticate(ctx context.Context, authorization string) (*service.User, error)
}

func authenticate(ctx context.Context, identity identityResolver, authorization string) (*service.User, error) {
	caller, err := identity.Authenticate(ctx, authorization)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "invalid or missing bearer token", err)
	}
	return caller, nil
}
