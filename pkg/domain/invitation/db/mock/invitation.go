package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	kdb "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db"
)

type CountSinceArgs struct {
	Email string
	Since time.Time
}

type InvitationInterface struct {
	Impl struct {
		New        func(context.Context, domain.InvitationSpec) (domain.Invitation, error)
		Get        func(context.Context, uuid.UUID) (domain.Invitation, error)
		CountSince func(context.Context, string, time.Time) (int, error)
		Expire     func(context.Context, string) error
	}
	Calls struct {
		New        kdbmock.CallLog[domain.InvitationSpec]
		Get        kdbmock.CallLog[uuid.UUID]
		CountSince kdbmock.CallLog[CountSinceArgs]
		Expire     kdbmock.CallLog[string]
	}
}

var _ kdb.InvitationInterface = &InvitationInterface{}

func NewInvitationInterface() *InvitationInterface {
	return &InvitationInterface{}
}

func (m *InvitationInterface) New(ctx context.Context, spec domain.InvitationSpec) (domain.Invitation, error) {
	m.Calls.New = append(m.Calls.New, spec)
	if m.Impl.New != nil {
		return m.Impl.New(ctx, spec)
	}
	panic(errors.New("should not be called"))
}

func (m *InvitationInterface) Get(ctx context.Context, id uuid.UUID) (domain.Invitation, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("should not be called"))
}

func (m *InvitationInterface) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	m.Calls.CountSince = append(m.Calls.CountSince, CountSinceArgs{Email: email, Since: since})
	if m.Impl.CountSince != nil {
		return m.Impl.CountSince(ctx, email, since)
	}
	panic(errors.New("should not be called"))
}

func (m *InvitationInterface) Expire(ctx context.Context, email string) error {
	m.Calls.Expire = append(m.Calls.Expire, email)
	if m.Impl.Expire != nil {
		return m.Impl.Expire(ctx, email)
	}
	panic(errors.New("should not be called"))
}
