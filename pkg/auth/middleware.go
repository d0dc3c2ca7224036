package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	apierr "github.com/pegasus-cloud/pegasus/pkg/api/types/errors"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

// CookieName is the cookie carrying the session token.
const CookieName = "pegasus-session"

const contextKey = "pegasus/session"

// SetCookie attaches a fresh session cookie to the response.
func SetCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware verifies the session cookie and stores the Session
// in the request context. Requests without a valid session are rejected.
func Middleware(issuer *Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil {
				return apierr.Unauthorized("log in first", err)
			}

			session, err := issuer.Verify(cookie.Value)
			if err != nil {
				return apierr.Unauthorized("session is expired or broken. log in again", err)
			}

			c.Set(contextKey, session)
			return next(c)
		}
	}
}

// SessionFrom extracts the Session stored by Middleware.
func SessionFrom(c echo.Context) (Session, bool) {
	session, ok := c.Get(contextKey).(Session)
	return session, ok
}

// RequireRole rejects sessions whose role is not one of roles.
// It must run after Middleware.
func RequireRole(roles ...domain.ClusterRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := SessionFrom(c)
			if !ok {
				return apierr.Unauthorized("log in first", nil)
			}
			for _, r := range roles {
				if session.Role == r {
					return next(c)
				}
			}
			return apierr.Forbidden("your role may not call this API")
		}
	}
}
