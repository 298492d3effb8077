// Package secretary provides methods for verifying HS256 bearer tokens issued by the auth backend.
package secretary

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/danilovkiri/dk_go_sharegourmet/internal/service/secretary"
)

// Leeway tolerates clock skew between this service and the token issuer.
const Leeway = 30 * time.Second

// TokenTTL is the lifetime of tokens produced by Sign.
const TokenTTL = time.Hour

var (
	// ErrEmptySubject is returned for a valid token without a user id.
	ErrEmptySubject = errors.New("token has no subject")
	// ErrNoSecret is returned when the service was configured without a signing secret.
	ErrNoSecret = errors.New("no signing secret configured")
)

// Check interface implementation explicitly
var (
	_ secretary.Secretary = (*Secretary)(nil)
)

// Secretary defines object structure and its attributes.
type Secretary struct {
	secret []byte
	now    func() time.Time
}

// NewSecretaryService initializes a secretary service with the shared signing secret.
func NewSecretaryService(secret string) *Secretary {
	return &Secretary{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Sign issues a token for userID.
func (s *Secretary) Sign(userID string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token signature and expiry and returns its subject.
func (s *Secretary) Verify(token string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithLeeway(Leeway), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return "", ErrEmptySubject
	}
	return claims.Subject, nil
}
