package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	httptestutil "github.com/pegasus-cloud/pegasus/internal/testutils/http"
	"github.com/pegasus-cloud/pegasus/pkg/auth"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	"github.com/pegasus-cloud/pegasus/pkg/utils/try"
)

func TestMiddleware(t *testing.T) {
	issuer := auth.NewIssuer("test-sign-key", time.Hour)
	user := domain.User{Id: uuid.New(), Role: domain.Lessee}

	passthrough := func(c echo.Context) error {
		session, ok := auth.SessionFrom(c)
		if !ok {
			t.Error("session is not stored in context")
		}
		if session.UserId != user.Id {
			t.Errorf("user id: got %s, want %s", session.UserId, user.Id)
		}
		return c.NoContent(http.StatusOK)
	}

	t.Run("a request with a valid cookie passes", func(t *testing.T) {
		token := try.To(issuer.Issue(user)).OrFatal(t)

		e := echo.New()
		ctx, resp := httptestutil.Get(
			e, "/api/users/whoami",
			httptestutil.WithCookie(&http.Cookie{Name: auth.CookieName, Value: token}),
		)

		if err := auth.Middleware(issuer)(passthrough)(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", resp.Code, http.StatusOK)
		}
	})

	t.Run("a request without a cookie is rejected with 401", func(t *testing.T) {
		e := echo.New()
		ctx, _ := httptestutil.Get(e, "/api/users/whoami")

		err := auth.Middleware(issuer)(passthrough)(ctx)
		if httperr, ok := err.(*echo.HTTPError); !ok || httperr.Code != http.StatusUnauthorized {
			t.Errorf("error: got %v, want 401", err)
		}
	})

	t.Run("a request with a broken cookie is rejected with 401", func(t *testing.T) {
		e := echo.New()
		ctx, _ := httptestutil.Get(
			e, "/api/users/whoami",
			httptestutil.WithCookie(&http.Cookie{Name: auth.CookieName, Value: "broken"}),
		)

		err := auth.Middleware(issuer)(passthrough)(ctx)
		if httperr, ok := err.(*echo.HTTPError); !ok || httperr.Code != http.StatusUnauthorized {
			t.Errorf("error: got %v, want 401", err)
		}
	})
}

func TestRequireRole(t *testing.T) {
	issuer := auth.NewIssuer("test-sign-key", time.Hour)

	serve := func(t *testing.T, role domain.ClusterRole, gate echo.MiddlewareFunc) error {
		user := domain.User{Id: uuid.New(), Role: role}
		token := try.To(issuer.Issue(user)).OrFatal(t)

		e := echo.New()
		ctx, _ := httptestutil.Get(
			e, "/api/admin/nodes",
			httptestutil.WithCookie(&http.Cookie{Name: auth.CookieName, Value: token}),
		)
		handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
		return auth.Middleware(issuer)(gate(handler))(ctx)
	}

	t.Run("a matching role passes", func(t *testing.T) {
		gate := auth.RequireRole(domain.ClusterAdmin)
		if err := serve(t, domain.ClusterAdmin, gate); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("any of several roles passes", func(t *testing.T) {
		gate := auth.RequireRole(domain.ClusterAdmin, domain.DepartmentAdmin)
		if err := serve(t, domain.DepartmentAdmin, gate); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("a mismatched role is rejected with 403", func(t *testing.T) {
		gate := auth.RequireRole(domain.ClusterAdmin)
		err := serve(t, domain.Lessee, gate)
		if httperr, ok := err.(*echo.HTTPError); !ok || httperr.Code != http.StatusForbidden {
			t.Errorf("error: got %v, want 403", err)
		}
	})
}
