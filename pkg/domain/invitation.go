package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvitationTTL is how long an invitation stays usable after creation.
const InvitationTTL = 24 * time.Hour

// MaxInvitationsPerDay caps invitations per target email
// within the trailing 24-hour window.
const MaxInvitationsPerDay = 3

type Invitation struct {
	Id         uuid.UUID
	Email      string
	Department *int
	IsAdmin    bool
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the invitation is consumed or timed out at now.
func (i Invitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// InvitationSpec is what callers pass to create a new invitation.
type InvitationSpec struct {
	Email      string
	Department *int
	IsAdmin    bool
}
