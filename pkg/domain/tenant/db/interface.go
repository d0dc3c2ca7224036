package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type TenantInterface interface {
	// State classifies the ledger row of the namespace name.
	State(ctx context.Context, name string) (domain.RecordState, error)

	// Register writes the ledger row for a namespace just created in the cluster.
	//
	// When noRecord, a fresh row is inserted;
	// otherwise the invalidated row is revalidated in place.
	Register(ctx context.Context, owner uuid.UUID, name string, noRecord bool) (domain.TenantNamespace, error)

	// Invalidate soft-deletes the ledger row and returns the namespace name.
	//
	// Invalidating an already-invalid row succeeds and leaves it invalid.
	Invalidate(ctx context.Context, owner uuid.UUID, name string) (string, error)

	// ListOwned lists valid namespace names of the owner.
	ListOwned(ctx context.Context, owner uuid.UUID) ([]string, error)
}
