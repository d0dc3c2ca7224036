package invitations

import (
	"time"

	"github.com/google/uuid"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type PostRequest struct {
	Email      string `json:"email"`
	Department *int   `json:"department"`
	IsAdmin    bool   `json:"is_admin"`
}

// IdRequest addresses an invitation by its id.
type IdRequest struct {
	Id string `json:"id"`
}

type ExpireStatus struct {
	Expire bool `json:"expire"`
}

type Detail struct {
	Id         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Department *int      `json:"department"`
	IsAdmin    bool      `json:"is_admin"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func ComposeDetail(i domain.Invitation) Detail {
	return Detail{
		Id:         i.Id,
		Email:      i.Email,
		Department: i.Department,
		IsAdmin:    i.IsAdmin,
		ExpiresAt:  i.ExpiresAt,
	}
}
