package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	apienvelope "github.com/pegasus-cloud/pegasus/pkg/api/types/envelope"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	apiusers "github.com/pegasus-cloud/pegasus/pkg/api/types/users"
	"github.com/pegasus-cloud/pegasus/pkg/auth"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
	kdbdep "github.com/pegasus-cloud/pegasus/pkg/domain/department/db"
	kerr "github.com/pegasus-cloud/pegasus/pkg/domain/errors"
	kdbinv "github.com/pegasus-cloud/pegasus/pkg/domain/invitation/db"
	kdbuser "github.com/pegasus-cloud/pegasus/pkg/domain/user/db"
)

// RegisterHandler signs a user up from an invitation.
//
// A department_admin registration also points its department's admin at
// the new user. The invitation of the email is consumed either way.
func RegisterHandler(
	dbUser kdbuser.UserInterface,
	dbDepartment kdbdep.DepartmentInterface,
	dbInvitation kdbinv.InvitationInterface,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiusers.RegisterRequest](c)
		if herr != nil {
			return herr
		}
		role, err := domain.AsClusterRole(req.Role)
		if err != nil {
			return apierr.BadRequest("role should be cluster_admin, department_admin or lessee", err)
		}

		known, err := dbUser.Exists(ctx, req.Email)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if known {
			return c.JSON(http.StatusOK, apienvelope.Refused(
				fmt.Sprintf("User with %s exists already!", req.Email),
			))
		}

		user, err := dbUser.New(ctx, domain.UserSpec{
			Email:    req.Email,
			Name:     req.Name,
			Password: req.Password,
			Role:     role,
			BelongTo: req.BelongTo,
		})
		if err != nil {
			if errors.Is(err, kerr.ErrConflict) {
				return apierr.Conflict("user already exists", apierr.WithError(err))
			}
			return apierr.InternalServerError(err)
		}

		if user.Role == domain.DepartmentAdmin && user.BelongTo != nil {
			if _, err := dbDepartment.SetAdmin(ctx, *user.BelongTo, user.Id); err != nil {
				return apierr.InternalServerError(err)
			}
		}

		if err := dbInvitation.Expire(ctx, user.Email); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apienvelope.OK("Sign up successfully!"))
	}
}

// LoginHandler verifies credentials and opens a session cookie.
func LoginHandler(dbUser kdbuser.UserInterface, sessions *auth.Issuer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		req, herr := bind[apiusers.LoginRequest](c)
		if herr != nil {
			return herr
		}

		user, err := dbUser.GetByEmail(ctx, req.Email)
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.Unauthorized("User doesn't exists", err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(user.PasswordHash), []byte(req.Password),
		); err != nil {
			return apierr.Unauthorized("password does not match", err)
		}

		token, err := sessions.Issue(user)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		auth.SetCookie(c, token, sessions.TTL())

		return c.JSON(http.StatusOK, apiusers.ComposeDetail(user))
	}
}

// LogoutHandler drops the session cookie.
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := auth.SessionFrom(c); !ok {
			return apierr.Unauthorized("no session", nil)
		}
		auth.ClearCookie(c)
		return c.JSON(http.StatusOK, apienvelope.Message{Msg: "Signed out successfully"})
	}
}

// WhoAmIHandler resolves the session into its user.
func WhoAmIHandler(dbUser kdbuser.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		session, ok := auth.SessionFrom(c)
		if !ok {
			return apierr.Unauthorized("no session", nil)
		}

		user, err := dbUser.Get(ctx, session.UserId)
		if errors.Is(err, kerr.ErrMissing) {
			return apierr.Unauthorized("user of this session is gone", err)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.ComposeDetail(user))
	}
}

// DepartmentUsersHandler lists the users of the department in the path.
func DepartmentUsersHandler(dbUser kdbuser.UserInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		departmentId, err := strconv.Atoi(c.Param(paramKey))
		if err != nil {
			return apierr.BadRequest("department id should be an integer", err)
		}

		found, err := dbUser.InDepartment(ctx, departmentId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.ComposeDetails(found))
	}
}

// AllUsersHandler lists every user.
func AllUsersHandler(dbUser kdbuser.UserInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		found, err := dbUser.All(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiusers.ComposeDetails(found))
	}
}
