package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/auth"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	"github.com/pegasus-cloud/pegasus/pkg/utils/try"
)

func TestIssuer(t *testing.T) {
	user := domain.User{
		Id:    uuid.New(),
		Email: "admin@example.com",
		Role:  domain.ClusterAdmin,
	}

	t.Run("a token it issued verifies to the same identity", func(t *testing.T) {
		testee := auth.NewIssuer("test-sign-key", time.Hour)

		token := try.To(testee.Issue(user)).OrFatal(t)
		session := try.To(testee.Verify(token)).OrFatal(t)

		if session.UserId != user.Id {
			t.Errorf("user id: got %s, want %s", session.UserId, user.Id)
		}
		if session.Role != domain.ClusterAdmin {
			t.Errorf("role: got %s, want %s", session.Role, domain.ClusterAdmin)
		}
	})

	t.Run("a token signed with another key is rejected", func(t *testing.T) {
		issuer := auth.NewIssuer("test-sign-key", time.Hour)
		verifier := auth.NewIssuer("different-key", time.Hour)

		token := try.To(issuer.Issue(user)).OrFatal(t)

		if _, err := verifier.Verify(token); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("error: got %v, want %v", err, auth.ErrInvalidSession)
		}
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		issuer := auth.NewIssuer("test-sign-key", -time.Minute)

		token := try.To(issuer.Issue(user)).OrFatal(t)

		if _, err := issuer.Verify(token); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("error: got %v, want %v", err, auth.ErrInvalidSession)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		issuer := auth.NewIssuer("test-sign-key", time.Hour)

		if _, err := issuer.Verify("not.a.token"); !errors.Is(err, auth.ErrInvalidSession) {
			t.Errorf("error: got %v, want %v", err, auth.ErrInvalidSession)
		}
	})
}
