package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type InvitationInterface interface {
	// New registers an invitation expiring domain.InvitationTTL after now.
	New(ctx context.Context, spec domain.InvitationSpec) (domain.Invitation, error)

	// Get finds an invitation by id.
	//
	// Returns domain.ErrMissing-wrapping error when no invitation matches.
	Get(ctx context.Context, id uuid.UUID) (domain.Invitation, error)

	// CountSince counts invitations created for the email at or after since.
	//
	// Pass since = now - domain.InvitationTTL for the trailing 24h window.
	CountSince(ctx context.Context, email string, since time.Time) (int, error)

	// Expire consumes all invitations of the email by forcing expires_at to now.
	Expire(ctx context.Context, email string) error
}
