package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ClusterRole is the RBAC level of a user.
//
// ClusterAdmin controls all the resources of the cluster,
// DepartmentAdmin controls the lessees in its department,
// and Lessee controls only its own namespaces.
type ClusterRole string

const (
	ClusterAdmin    ClusterRole = "cluster_admin"
	DepartmentAdmin ClusterRole = "department_admin"
	Lessee          ClusterRole = "lessee"
)

func (r ClusterRole) String() string {
	return string(r)
}

// AsClusterRole parses the storage/wire encoding of ClusterRole.
func AsClusterRole(s string) (ClusterRole, error) {
	switch ClusterRole(s) {
	case ClusterAdmin, DepartmentAdmin, Lessee:
		return ClusterRole(s), nil
	default:
		return "", fmt.Errorf("unknown cluster role: %s", s)
	}
}

type User struct {
	Id           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         ClusterRole
	BelongTo     *int // department id; nil when the user is not in a department
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (u *User) Equal(o *User) bool {
	if (u == nil) != (o == nil) {
		return false
	}
	if u == nil {
		return true
	}
	if (u.BelongTo == nil) != (o.BelongTo == nil) {
		return false
	}
	if u.BelongTo != nil && *u.BelongTo != *o.BelongTo {
		return false
	}
	return u.Id == o.Id &&
		u.Email == o.Email &&
		u.Name == o.Name &&
		u.Role == o.Role
}

// UserSpec is what callers pass to create a new user.
type UserSpec struct {
	Email    string
	Name     string
	Password string // plain; hashed in the persistence layer
	Role     ClusterRole
	BelongTo *int
}
