package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	kdb "github.com/pegasus-cloud/pegasus/pkg/domain/tenant/db"
)

type RegisterArgs struct {
	Owner    uuid.UUID
	Name     string
	NoRecord bool
}

type InvalidateArgs struct {
	Owner uuid.UUID
	Name  string
}

type TenantInterface struct {
	Impl struct {
		State      func(context.Context, string) (domain.RecordState, error)
		Register   func(context.Context, uuid.UUID, string, bool) (domain.TenantNamespace, error)
		Invalidate func(context.Context, uuid.UUID, string) (string, error)
		ListOwned  func(context.Context, uuid.UUID) ([]string, error)
	}
	Calls struct {
		State      kdbmock.CallLog[string]
		Register   kdbmock.CallLog[RegisterArgs]
		Invalidate kdbmock.CallLog[InvalidateArgs]
		ListOwned  kdbmock.CallLog[uuid.UUID]
	}
}

var _ kdb.TenantInterface = &TenantInterface{}

func NewTenantInterface() *TenantInterface {
	return &TenantInterface{}
}

func (m *TenantInterface) State(ctx context.Context, name string) (domain.RecordState, error) {
	m.Calls.State = append(m.Calls.State, name)
	if m.Impl.State != nil {
		return m.Impl.State(ctx, name)
	}
	panic(errors.New("should not be called"))
}

func (m *TenantInterface) Register(ctx context.Context, owner uuid.UUID, name string, noRecord bool) (domain.TenantNamespace, error) {
	m.Calls.Register = append(m.Calls.Register, RegisterArgs{Owner: owner, Name: name, NoRecord: noRecord})
	if m.Impl.Register != nil {
		return m.Impl.Register(ctx, owner, name, noRecord)
	}
	panic(errors.New("should not be called"))
}

func (m *TenantInterface) Invalidate(ctx context.Context, owner uuid.UUID, name string) (string, error) {
	m.Calls.Invalidate = append(m.Calls.Invalidate, InvalidateArgs{Owner: owner, Name: name})
	if m.Impl.Invalidate != nil {
		return m.Impl.Invalidate(ctx, owner, name)
	}
	panic(errors.New("should not be called"))
}

func (m *TenantInterface) ListOwned(ctx context.Context, owner uuid.UUID) ([]string, error) {
	m.Calls.ListOwned = append(m.Calls.ListOwned, owner)
	if m.Impl.ListOwned != nil {
		return m.Impl.ListOwned(ctx, owner)
	}
	panic(errors.New("should not be called"))
}
