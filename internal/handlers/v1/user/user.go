package user

import (
	"time"

	"github.com/carson-networks/cashbook-server/internal/service"
)

// User is the API response model for a user. It never carries the password
// hash.
type User struct {
	ID        int64   `json:"id" doc:"User ID"`
	Name      string  `json:"name" doc:"Display name"`
	Username  string  `json:"username" doc:"Unique login name"`
	Email     string  `json:"email" doc:"Email address"`
	Phone     *string `json:"phone,omitempty" doc:"Phone number"`
	Photo     *string `json:"photo,omitempty" doc:"Avatar URL"`
	CreatedAt string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt string  `json:"updated_at" doc:"RFC3339 last update time"`
}

func toAPIUser(u service.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Photo:     u.Photo,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
