package mail_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	"github.com/pegasus-cloud/pegasus/pkg/mail"
	"github.com/pegasus-cloud/pegasus/pkg/utils/try"
)

func TestRenderInvitation(t *testing.T) {
	invitation := domain.Invitation{
		Id:        uuid.MustParse("8b6cfc35-5721-4c1f-82b5-a1d9c3e4fd02"),
		Email:     "new-user@example.com",
		ExpiresAt: time.Now().Add(domain.InvitationTTL),
	}

	body := try.To(mail.RenderInvitation(
		"Pegasus Works", "cloud.example.com", invitation,
	)).OrFatal(t)

	for _, want := range []string{
		"Pegasus Works",
		"https://cloud.example.com/invitation/8b6cfc35-5721-4c1f-82b5-a1d9c3e4fd02",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body should contain %q:\n%s", want, body)
		}
	}
}
