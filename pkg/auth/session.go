package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

var ErrInvalidSession = errors.New("invalid session")

// Session is the authenticated caller identity carried by a request.
type Session struct {
	UserId uuid.UUID
	Role   domain.ClusterRole
}

type sessionClaims struct {
	jwt.RegisteredClaims

	// private claims
	UserId string `json:"pegasus/userId"`
	Role   string `json:"pegasus/role"`
}

// Issuer signs and verifies session tokens.
//
// Tokens are stateless HS256 JWTs; revocation happens by expiry only.
type Issuer struct {
	signKey []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewIssuer(signKey string, ttl time.Duration) *Issuer {
	return &Issuer{
		signKey: []byte(signKey),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue creates a token for the user, valid for the issuer's TTL.
func (i *Issuer) Issue(user domain.User) (string, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserId: user.Id.String(),
		Role:   string(user.Role),
	})
	return token.SignedString(i.signKey)
}

// Verify parses the token and returns the session it carries.
// Expired, forged, and malformed tokens all yield ErrInvalidSession.
func (i *Issuer) Verify(token string) (Session, error) {
	claims := new(sessionClaims)
	parsed, err := jwt.ParseWithClaims(
		token, claims,
		func(t *jwt.Token) (any, error) { return i.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return Session{}, ErrInvalidSession
	}

	userId, err := uuid.Parse(claims.UserId)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	role, err := domain.AsClusterRole(claims.Role)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return Session{UserId: userId, Role: role}, nil
}
