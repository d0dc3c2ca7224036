package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

type RegistryInterface interface {
	// RepositoryState classifies the ledger row of the repository name.
	RepositoryState(ctx context.Context, name string) (domain.RecordState, error)

	// RegisterRepository writes the ledger row for a repository just created
	// in the remote registry. When noRecord, a fresh row is inserted;
	// otherwise the invalidated row is revalidated with the new owner and
	// visibility.
	RegisterRepository(ctx context.Context, belongTo *uuid.UUID, name string, isPublic bool, noRecord bool) (domain.Repository, error)

	// InvalidateRepository soft-deletes the repository ledger row.
	//
	// Invalidating an already-invalid row succeeds and leaves it invalid.
	InvalidateRepository(ctx context.Context, name string) error

	// PublicRepositories lists names of valid public repositories.
	PublicRepositories(ctx context.Context) ([]string, error)

	// OwnedRepositories lists repository names belonging to the owner.
	OwnedRepositories(ctx context.Context, owner uuid.UUID) ([]string, error)

	// TagState classifies the ledger row of the (repository, tag) pair.
	TagState(ctx context.Context, repoName string, tagName string) (domain.RecordState, error)

	// RegisterTag writes the ledger row for a build rule just created in the
	// build engine. When noRecord, a fresh row is inserted; otherwise the
	// invalidated row is revalidated in place.
	RegisterTag(ctx context.Context, repoName string, tagName string, noRecord bool) (domain.Tag, error)

	// InvalidateTag soft-deletes the tag ledger row.
	InvalidateTag(ctx context.Context, repoName string, tagName string) error
}
