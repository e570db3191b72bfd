package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"petid/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("session secret not configured")
	ErrInvalidToken  = errors.New("invalid session token")
)

// tokenClaims es el payload del token de sesión que emite el front (HS256).
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Verifier implementa auth.AuthVerifier con un secreto compartido.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrNotConfigured
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	uid := strings.TrimSpace(tc.Subject)
	if uid == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}

	return auth.Claims{
		UserID: uid,
		Email:  strings.ToLower(strings.TrimSpace(tc.Email)),
		Name:   strings.TrimSpace(tc.Name),
	}, nil
}

// Sign emite un token para claims; lo usan los tests y el entorno de desarrollo.
func (v *Verifier) Sign(c auth.Claims, ttl time.Duration) (string, error) {
	now := v.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: c.Email,
		Name:  c.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return tok.SignedString(v.secret)
}

var _ auth.AuthVerifier = (*Verifier)(nil)
