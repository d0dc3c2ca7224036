package mocks

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdb "github.com/pegasus-cloud/pegasus/pkg/domain/department/db"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
)

type SetAdminArgs struct {
	Id    int
	Admin uuid.UUID
}

type DepartmentInterface struct {
	Impl struct {
		New      func(context.Context, string) (domain.Department, error)
		Get      func(context.Context, int) (domain.Department, error)
		SetAdmin func(context.Context, int, uuid.UUID) (domain.Department, error)
	}
	Calls struct {
		New      kdbmock.CallLog[string]
		Get      kdbmock.CallLog[int]
		SetAdmin kdbmock.CallLog[SetAdminArgs]
	}
}

var _ kdb.DepartmentInterface = &DepartmentInterface{}

func NewDepartmentInterface() *DepartmentInterface {
	return &DepartmentInterface{}
}

func (m *DepartmentInterface) New(ctx context.Context, name string) (domain.Department, error) {
	m.Calls.New = append(m.Calls.New, name)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, name)
	}
	panic(errors.New("should not be called"))
}

func (m *DepartmentInterface) Get(ctx context.Context, id int) (domain.Department, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("should not be called"))
}

func (m *DepartmentInterface) SetAdmin(ctx context.Context, id int, admin uuid.UUID) (domain.Department, error) {
	m.Calls.SetAdmin = append(m.Calls.SetAdmin, SetAdminArgs{Id: id, Admin: admin})
	if m.Impl.SetAdmin != nil {
		return m.Impl.SetAdmin(ctx, id, admin)
	}
	panic(errors.New("should not be called"))
}
