package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	BelongTo *int   `json:"belong_to"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Detail is the user as shown to API clients. The password hash never
// leaves the server.
type Detail struct {
	Id        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	BelongTo  *int       `json:"belong_to"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func ComposeDetail(u domain.User) Detail {
	return Detail{
		Id:        u.Id,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		BelongTo:  u.BelongTo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ComposeDetails(us []domain.User) []Detail {
	details := make([]Detail, 0, len(us))
	for _, u := range us {
		details = append(details, ComposeDetail(u))
	}
	return details
}
