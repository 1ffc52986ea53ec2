package business

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// Business is the API response model for a business.
type Business struct {
	ID          int64   `json:"id" doc:"Business ID"`
	UserID      int64   `json:"user_id" doc:"Owning user ID"`
	Name        string  `json:"name" doc:"Business name"`
	Description *string `json:"description,omitempty" doc:"Free-form description"`
	Industry    string  `json:"industry" doc:"Industry label"`
	FoundedYear int     `json:"founded_year" doc:"Year the business was founded"`
	Revenue     float64 `json:"revenue" doc:"Annual revenue"`
	Employees   int     `json:"employees" doc:"Number of employees"`
	Location    string  `json:"location" doc:"Location"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt   string  `json:"updated_at" doc:"RFC3339 last update time"`
}

func toAPIBusiness(b service.Business) Business {
	return Business{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Description: b.Description,
		Industry:    b.Industry,
		FoundedYear: b.FoundedYear,
		Revenue:     b.Revenue,
		Employees:   b.Employees,
		Location:    b.Location,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
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
