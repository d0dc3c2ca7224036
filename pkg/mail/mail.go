package mail

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

//go:embed template.html
var invitationTemplate string

var tmpl = template.Must(template.New("invitation").Parse(invitationTemplate))

// Sender delivers invitation mails.
type Sender interface {
	SendInvitation(ctx context.Context, invitation domain.Invitation) error
}

type smtpSender struct {
	addr         string
	from         string
	auth         smtp.Auth
	organisation string
	domain       string
}

var _ Sender = &smtpSender{}

// New builds a Sender speaking SMTP with PLAIN auth.
// Empty username disables authentication (open relay, local testing).
func New(host string, port int32, from string, username string, password string, organisation string, domain string) Sender {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &smtpSender{
		addr:         fmt.Sprintf("%s:%d", host, port),
		from:         from,
		auth:         auth,
		organisation: organisation,
		domain:       domain,
	}
}

type templateParams struct {
	Organisation string
	Domain       string
	InvitationId string
}

// RenderInvitation expands the invitation mail body.
func RenderInvitation(organisation string, domain_ string, invitation domain.Invitation) (string, error) {
	buf := new(bytes.Buffer)
	err := tmpl.Execute(buf, templateParams{
		Organisation: organisation,
		Domain:       domain_,
		InvitationId: invitation.Id.String(),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *smtpSender) SendInvitation(ctx context.Context, invitation domain.Invitation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := RenderInvitation(s.organisation, s.domain, invitation)
	if err != nil {
		return err
	}

	msg := new(bytes.Buffer)
	fmt.Fprintf(msg, "From: %s\r\n", s.from)
	fmt.Fprintf(msg, "To: %s\r\n", invitation.Email)
	fmt.Fprintf(msg, "Subject: Invitation from Pegasus\r\n")
	fmt.Fprintf(msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(msg, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	fmt.Fprintf(msg, "\r\n")
	msg.WriteString(body)

	return smtp.SendMail(s.addr, s.auth, s.from, []string{invitation.Email}, msg.Bytes())
}
