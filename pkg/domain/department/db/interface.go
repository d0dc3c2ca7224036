package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type DepartmentInterface interface {
	// New registers a department with no admin.
	New(ctx context.Context, name string) (domain.Department, error)

	// Get finds a department by id.
	//
	// Returns domain.ErrMissing-wrapping error when no department matches.
	Get(ctx context.Context, id int) (domain.Department, error)

	// SetAdmin points the department's admin at the user.
	//
	// The admin must reference an existing user;
	// otherwise, a domain.ErrMissing-wrapping error is returned.
	SetAdmin(ctx context.Context, id int, admin uuid.UUID) (domain.Department, error)
}
