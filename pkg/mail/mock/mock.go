package mocks

import (
	"context"
	"errors"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbmock "github.com/pegasus-cloud/pegasus/pkg/internal/db/mock"
	"github.com/pegasus-cloud/pegasus/pkg/mail"
)

type Sender struct {
	Impl struct {
		SendInvitation func(context.Context, domain.Invitation) error
	}
	Calls struct {
		SendInvitation kdbmock.CallLog[domain.Invitation]
	}
}

var _ mail.Sender = &Sender{}

func NewSender() *Sender {
	return &Sender{}
}

func (m *Sender) SendInvitation(ctx context.Context, invitation domain.Invitation) error {
	m.Calls.SendInvitation = append(m.Calls.SendInvitation, invitation)
	if m.Impl.SendInvitation != nil {
		return m.Impl.SendInvitation(ctx, invitation)
	}
	panic(errors.New("should not be called"))
}
