package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	handlers "github.com/pegasus-cloud/pegasus/cmd/pegasusd/handlers"
	httptestutil "github.com/pegasus-cloud/pegasus/internal/testutils/http"
	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	"github.com/pegasus-cloud/pegasus/pkg/auth"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	depmocks "github.com/pegasus-cloud/pegasus/pkg/domain/department/db/mock"
	invmocks "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db/mock"
	usermocks "github.com/pegasus-cloud/pegasus/pkg/domain/user/db/mock"
	"github.com/pegasus-cloud/pegasus/pkg/utils/try"
)

func TestRegisterHandler(t *testing.T) {
	type when struct {
		body       string
		userExists bool
	}
	type then struct {
		status    bool
		msg       string
		created   int
		setAdmins int
		expires   int
	}

	department := 5

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"when the email is already registered, it should refuse": {
			when{
				body:       `{"email": "a@x.com", "name": "a", "password": "secret", "role": "lessee"}`,
				userExists: true,
			},
			then{status: false, msg: "User with a@x.com exists already!"},
		},
		"when a lessee signs up, it should create the user and consume the invitation": {
			when{
				body: `{"email": "a@x.com", "name": "a", "password": "secret", "role": "lessee"}`,
			},
			then{status: true, msg: "Sign up successfully!", created: 1, expires: 1},
		},
		"when a department_admin signs up, it should also point the department at them": {
			when{
				body: `{"email": "a@x.com", "name": "a", "password": "secret", "role": "department_admin", "belong_to": 5}`,
			},
			then{status: true, msg: "Sign up successfully!", created: 1, setAdmins: 1, expires: 1},
		},
	} {
		t.Run(name, func(t *testing.T) {
			userId := uuid.New()
			dbUser := usermocks.NewUserInterface()
			dbUser.Impl.Exists = func(context.Context, string) (bool, error) {
				return testcase.when.userExists, nil
			}
			dbUser.Impl.New = func(_ context.Context, spec domain.UserSpec) (domain.User, error) {
				return domain.User{
					Id: userId, Email: spec.Email, Name: spec.Name,
					Role: spec.Role, BelongTo: spec.BelongTo,
				}, nil
			}
			dbDepartment := depmocks.NewDepartmentInterface()
			dbDepartment.Impl.SetAdmin = func(_ context.Context, id int, admin uuid.UUID) (domain.Department, error) {
				return domain.Department{Id: id, Name: "dept", Admin: &admin}, nil
			}
			dbInvitation := invmocks.NewInvitationInterface()
			dbInvitation.Impl.Expire = func(context.Context, string) error { return nil }

			e := echo.New()
			c, rec := httptestutil.Post(
				e, "/api/users/register",
				strings.NewReader(testcase.when.body),
				httptestutil.ContentType("application/json"),
			)

			testee := handlers.RegisterHandler(dbUser, dbDepartment, dbInvitation)
			if err := testee(c); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			var actual apienvelope.Status
			if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
				t.Fatalf("response is not a JSON envelope: %s", err)
			}
			if actual.Status != testcase.then.status || actual.Msg != testcase.then.msg {
				t.Errorf(
					"unexpected envelope: (status, msg) = (%v, %s), want (%v, %s)",
					actual.Status, actual.Msg, testcase.then.status, testcase.then.msg,
				)
			}

			if len(dbUser.Calls.New) != testcase.then.created {
				t.Errorf("New is called %d times, want %d", len(dbUser.Calls.New), testcase.then.created)
			}
			if len(dbDepartment.Calls.SetAdmin) != testcase.then.setAdmins {
				t.Errorf(
					"SetAdmin is called %d times, want %d",
					len(dbDepartment.Calls.SetAdmin), testcase.then.setAdmins,
				)
			}
			if testcase.then.setAdmins == 1 {
				args := dbDepartment.Calls.SetAdmin.Last()
				if args.Id != department || args.Admin != userId {
					t.Errorf("SetAdmin is called with (%d, %s)", args.Id, args.Admin)
				}
			}
			if len(dbInvitation.Calls.Expire) != testcase.then.expires {
				t.Errorf(
					"Expire is called %d times, want %d",
					len(dbInvitation.Calls.Expire), testcase.then.expires,
				)
			}
		})
	}

	t.Run("when the role is unknown, it should answer 400", func(t *testing.T) {
		dbUser := usermocks.NewUserInterface()
		dbDepartment := depmocks.NewDepartmentInterface()
		dbInvitation := invmocks.NewInvitationInterface()

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/users/register",
			strings.NewReader(`{"email": "a@x.com", "name": "a", "password": "secret", "role": "emperor"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.RegisterHandler(dbUser, dbDepartment, dbInvitation)
		err := testee(c)
		herr, ok := err.(*echo.HTTPError)
		if !ok || herr.Code != http.StatusBadRequest {
			t.Errorf("unexpected error: %s", err)
		}
		if len(dbUser.Calls.New) != 0 {
			t.Error("New should not be called")
		}
	})
}

func TestLoginHandler(t *testing.T) {
	hash := try.To(
		bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost),
	).OrFatal(t)
	user := domain.User{
		Id: uuid.New(), Email: "a@x.com", Name: "a",
		PasswordHash: string(hash), Role: domain.Lessee,
	}
	sessions := auth.NewIssuer("test-sign-key", time.Hour)

	t.Run("when the credentials match, it should open a session", func(t *testing.T) {
		dbUser := usermocks.NewUserInterface()
		dbUser.Impl.GetByEmail = func(_ context.Context, email string) (domain.User, error) {
			if email != user.Email {
				t.Errorf("unexpected email: %s", email)
			}
			return user, nil
		}

		e := echo.New()
		c, rec := httptestutil.Post(
			e, "/api/users/login",
			strings.NewReader(`{"email": "a@x.com", "password": "open sesame"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.LoginHandler(dbUser, sessions)
		if err := testee(c); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		var cookie *http.Cookie
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == auth.CookieName {
				cookie = ck
			}
		}
		if cookie == nil {
			t.Fatal("session cookie is not set")
		}
		session := try.To(sessions.Verify(cookie.Value)).OrFatal(t)
		if session.UserId != user.Id || session.Role != user.Role {
			t.Errorf("unexpected session: %+v", session)
		}

		actual := map[string]any{}
		if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not JSON: %s", err)
		}
		if actual["email"] != user.Email {
			t.Errorf("unexpected email in response: %v", actual["email"])
		}
		if _, leaked := actual["password"]; leaked {
			t.Error("password should not be in the response")
		}
	})

	t.Run("when the password does not match, it should answer 401", func(t *testing.T) {
		dbUser := usermocks.NewUserInterface()
		dbUser.Impl.GetByEmail = func(context.Context, string) (domain.User, error) {
			return user, nil
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/users/login",
			strings.NewReader(`{"email": "a@x.com", "password": "wrong"}`),
			httptestutil.ContentType("application/json"),
		)

		testee := handlers.LoginHandler(dbUser, sessions)
		err := testee(c)
		herr, ok := err.(*echo.HTTPError)
		if !ok || herr.Code != http.StatusUnauthorized {
			t.Errorf("unexpected error: %s", err)
		}
	})
}

func TestWhoAmIHandler(t *testing.T) {
	user := domain.User{
		Id: uuid.New(), Email: "a@x.com", Name: "a",
		Role: domain.DepartmentAdmin, CreatedAt: time.Now(),
	}
	sessions := auth.NewIssuer("test-sign-key", time.Hour)
	token := try.To(sessions.Issue(user)).OrFatal(t)

	dbUser := usermocks.NewUserInterface()
	dbUser.Impl.Get = func(_ context.Context, id uuid.UUID) (domain.User, error) {
		if id != user.Id {
			t.Errorf("unexpected id: %s", id)
		}
		return user, nil
	}

	e := echo.New()
	c, rec := httptestutil.Post(
		e, "/api/users/whoami", strings.NewReader(""),
		httptestutil.WithCookie(&http.Cookie{Name: auth.CookieName, Value: token}),
	)

	testee := auth.Middleware(sessions)(handlers.WhoAmIHandler(dbUser))
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	actual := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not JSON: %s", err)
	}
	if actual["id"] != user.Id.String() || actual["role"] != "department_admin" {
		t.Errorf("unexpected user in response: %v", actual)
	}
}

func TestLogoutHandler(t *testing.T) {
	user := domain.User{Id: uuid.New(), Email: "a@x.com", Role: domain.Lessee}
	sessions := auth.NewIssuer("test-sign-key", time.Hour)
	token := try.To(sessions.Issue(user)).OrFatal(t)

	e := echo.New()
	c, rec := httptestutil.Post(
		e, "/api/users/logout", strings.NewReader(""),
		httptestutil.WithCookie(&http.Cookie{Name: auth.CookieName, Value: token}),
	)

	testee := auth.Middleware(sessions)(handlers.LogoutHandler())
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	var dropped *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == auth.CookieName {
			dropped = ck
		}
	}
	if dropped == nil || dropped.MaxAge >= 0 {
		t.Error("session cookie is not dropped")
	}
}

func TestDepartmentUsersHandler(t *testing.T) {
	dbUser := usermocks.NewUserInterface()
	dbUser.Impl.InDepartment = func(_ context.Context, departmentId int) ([]domain.User, error) {
		if departmentId != 7 {
			t.Errorf("unexpected department id: %d", departmentId)
		}
		return []domain.User{
			{Id: uuid.New(), Email: "a@x.com", Role: domain.Lessee},
			{Id: uuid.New(), Email: "b@x.com", Role: domain.Lessee},
		}, nil
	}

	e := echo.New()
	c, rec := httptestutil.Get(e, "/api/users/list/7")
	c.SetParamNames("id")
	c.SetParamValues("7")

	testee := handlers.DepartmentUsersHandler(dbUser, "id")
	if err := testee(c); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	actual := []map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &actual); err != nil {
		t.Fatalf("response is not JSON: %s", err)
	}
	if len(actual) != 2 {
		t.Errorf("unexpected user count: %d", len(actual))
	}
}
