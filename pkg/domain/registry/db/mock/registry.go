package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	kdb "github.com/pegasus-cloud/pegasus/pkg/domain/registry/db"
)

type RegisterRepositoryArgs struct {
	BelongTo *uuid.UUID
	Name     string
	IsPublic bool
	NoRecord bool
}

type TagArgs struct {
	RepoName string
	TagName  string
}

type RegisterTagArgs struct {
	RepoName string
	TagName  string
	NoRecord bool
}

type RegistryInterface struct {
	Impl struct {
		RepositoryState      func(context.Context, string) (domain.RecordState, error)
		RegisterRepository   func(context.Context, *uuid.UUID, string, bool, bool) (domain.Repository, error)
		InvalidateRepository func(context.Context, string) error
		PublicRepositories   func(context.Context) ([]string, error)
		OwnedRepositories    func(context.Context, uuid.UUID) ([]string, error)
		TagState             func(context.Context, string, string) (domain.RecordState, error)
		RegisterTag          func(context.Context, string, string, bool) (domain.Tag, error)
		InvalidateTag        func(context.Context, string, string) error
	}
	Calls struct {
		RepositoryState      kdbmock.CallLog[string]
		RegisterRepository   kdbmock.CallLog[RegisterRepositoryArgs]
		InvalidateRepository kdbmock.CallLog[string]
		PublicRepositories   kdbmock.CallLog[struct{}]
		OwnedRepositories    kdbmock.CallLog[uuid.UUID]
		TagState             kdbmock.CallLog[TagArgs]
		RegisterTag          kdbmock.CallLog[RegisterTagArgs]
		InvalidateTag        kdbmock.CallLog[TagArgs]
	}
}

var _ kdb.RegistryInterface = &RegistryInterface{}

func NewRegistryInterface() *RegistryInterface {
	return &RegistryInterface{}
}

func (m *RegistryInterface) RepositoryState(ctx context.Context, name string) (domain.RecordState, error) {
	m.Calls.RepositoryState = append(m.Calls.RepositoryState, name)
	if m.Impl.RepositoryState != nil {
		return m.Impl.RepositoryState(ctx, name)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) RegisterRepository(ctx context.Context, belongTo *uuid.UUID, name string, isPublic bool, noRecord bool) (domain.Repository, error) {
	m.Calls.RegisterRepository = append(m.Calls.RegisterRepository, RegisterRepositoryArgs{
		BelongTo: belongTo, Name: name, IsPublic: isPublic, NoRecord: noRecord,
	})
	if m.Impl.RegisterRepository != nil {
		return m.Impl.RegisterRepository(ctx, belongTo, name, isPublic, noRecord)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) InvalidateRepository(ctx context.Context, name string) error {
	m.Calls.InvalidateRepository = append(m.Calls.InvalidateRepository, name)
	if m.Impl.InvalidateRepository != nil {
		return m.Impl.InvalidateRepository(ctx, name)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) PublicRepositories(ctx context.Context) ([]string, error) {
	m.Calls.PublicRepositories = append(m.Calls.PublicRepositories, struct{}{})
	if m.Impl.PublicRepositories != nil {
		return m.Impl.PublicRepositories(ctx)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) OwnedRepositories(ctx context.Context, owner uuid.UUID) ([]string, error) {
	m.Calls.OwnedRepositories = append(m.Calls.OwnedRepositories, owner)
	if m.Impl.OwnedRepositories != nil {
		return m.Impl.OwnedRepositories(ctx, owner)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) TagState(ctx context.Context, repoName string, tagName string) (domain.RecordState, error) {
	m.Calls.TagState = append(m.Calls.TagState, TagArgs{RepoName: repoName, TagName: tagName})
	if m.Impl.TagState != nil {
		return m.Impl.TagState(ctx, repoName, tagName)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) RegisterTag(ctx context.Context, repoName string, tagName string, noRecord bool) (domain.Tag, error) {
	m.Calls.RegisterTag = append(m.Calls.RegisterTag, RegisterTagArgs{
		RepoName: repoName, TagName: tagName, NoRecord: noRecord,
	})
	if m.Impl.RegisterTag != nil {
		return m.Impl.RegisterTag(ctx, repoName, tagName, noRecord)
	}
	panic(errors.New("should not be called"))
}

func (m *RegistryInterface) InvalidateTag(ctx context.Context, repoName string, tagName string) error {
	m.Calls.InvalidateTag = append(m.Calls.InvalidateTag, TagArgs{RepoName: repoName, TagName: tagName})
	if m.Impl.InvalidateTag != nil {
		return m.Impl.InvalidateTag(ctx, repoName, tagName)
	}
	panic(errors.New("should not be called"))
}
