package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	kdb "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
)

type UpdateArgs struct {
	Id   uuid.UUID
	Spec domain.UserSpec
}

type UserInterface struct {
	Impl struct {
		New          func(context.Context, domain.UserSpec) (domain.User, error)
		Get          func(context.Context, uuid.UUID) (domain.User, error)
		GetByEmail   func(context.Context, string) (domain.User, error)
		Exists       func(context.Context, string) (bool, error)
		ExistsId     func(context.Context, uuid.UUID) (bool, error)
		InDepartment func(context.Context, int) ([]domain.User, error)
		All          func(context.Context) ([]domain.User, error)
		Update       func(context.Context, uuid.UUID, domain.UserSpec) (domain.User, error)
		Delete       func(context.Context, uuid.UUID) error
	}
	Calls struct {
		New          kdbmock.CallLog[domain.UserSpec]
		Get          kdbmock.CallLog[uuid.UUID]
		GetByEmail   kdbmock.CallLog[string]
		Exists       kdbmock.CallLog[string]
		ExistsId     kdbmock.CallLog[uuid.UUID]
		InDepartment kdbmock.CallLog[int]
		All          kdbmock.CallLog[struct{}]
		Update       kdbmock.CallLog[UpdateArgs]
		Delete       kdbmock.CallLog[uuid.UUID]
	}
}

var _ kdb.UserInterface = &UserInterface{}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

func (m *UserInterface) New(ctx context.Context, spec domain.UserSpec) (domain.User, error) {
	m.Calls.New = append(m.Calls.New, spec)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, spec)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	m.Calls.GetByEmail = append(m.Calls.GetByEmail, email)
	if m.Impl.GetByEmail != nil {
		return m.Impl.GetByEmail(ctx, email)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) Exists(ctx context.Context, email string) (bool, error) {
	m.Calls.Exists = append(m.Calls.Exists, email)
	if m.Impl.Exists != nil {
		return m.Impl.Exists(ctx, email)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) ExistsId(ctx context.Context, id uuid.UUID) (bool, error) {
	m.Calls.ExistsId = append(m.Calls.ExistsId, id)
	if m.Impl.ExistsId != nil {
		return m.Impl.ExistsId(ctx, id)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) InDepartment(ctx context.Context, departmentId int) ([]domain.User, error) {
	m.Calls.InDepartment = append(m.Calls.InDepartment, departmentId)
	if m.Impl.InDepartment != nil {
		return m.Impl.InDepartment(ctx, departmentId)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) All(ctx context.Context) ([]domain.User, error) {
	m.Calls.All = append(m.Calls.All, struct{}{})
	if m.Impl.All != nil {
		return m.Impl.All(ctx)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) Update(ctx context.Context, id uuid.UUID, spec domain.UserSpec) (domain.User, error) {
	m.Calls.Update = append(m.Calls.Update, UpdateArgs{Id: id, Spec: spec})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, spec)
	}
	panic(errors.New("should not be called"))
}

func (m *UserInterface) Delete(ctx context.Context, id uuid.UUID) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("should not be called"))
}
