package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type UserInterface interface {
	// New registers a user. The password in spec is hashed before insert.
	//
	// Returns domain.ErrConflict-wrapping error when the email is taken.
	New(ctx context.Context, spec domain.UserSpec) (domain.User, error)

	// Get finds a user by id.
	//
	// Returns domain.ErrMissing-wrapping error when no user matches.
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Exists reports whether a user with the email is registered.
	Exists(ctx context.Context, email string) (bool, error)

	// ExistsId reports whether a user with the id is registered.
	ExistsId(ctx context.Context, id uuid.UUID) (bool, error)

	// InDepartment lists users belonging to the department.
	InDepartment(ctx context.Context, departmentId int) ([]domain.User, error)

	// All lists every user.
	All(ctx context.Context) ([]domain.User, error)

	// Update rewrites name, role and department of the user.
	Update(ctx context.Context, id uuid.UUID, spec domain.UserSpec) (domain.User, error)

	// Delete removes the user row.
	Delete(ctx context.Context, id uuid.UUID) error
}
