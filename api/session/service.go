package session

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName is the name of the admin session cookie.
	CookieName = "session"

	// TokenTTL is the fixed lifetime of an admin session token.
	TokenTTL = 7 * 24 * time.Hour
)

// fallbackSecret signs tokens when no secret is configured. Startup
// logs a prominent warning when this is in use.
const fallbackSecret = "dev-fallback-secret-replace-in-production"

var (
	ErrLoginDisabled   = errors.New("admin password is not configured")
	ErrInvalidPassword = errors.New("invalid password")
)

// Claims carries the single fixed role claim of the admin principal.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Service issues and verifies admin session tokens. There is exactly
// one admin principal, so tokens carry no user identity.
type Service struct {
	secret        []byte
	adminPassword string
	now           func() time.Time
}

// NewService creates a token service signing with the given secret.
// An empty secret falls back to the development constant.
func NewService(secret, adminPassword string) *Service {
	if secret == "" {
		secret = fallbackSecret
	}
	return &Service{
		secret:        []byte(secret),
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

// UsingFallbackSecret reports whether tokens are signed with the
// built-in development secret.
func (s *Service) UsingFallbackSecret() bool {
	return string(s.secret) == fallbackSecret
}

// LoginEnabled reports whether an admin password is configured.
func (s *Service) LoginEnabled() bool {
	return s.adminPassword != ""
}

// Issue produces a signed token with role=admin expiring TokenTTL from now.
func (s *Service) Issue() (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Role: "admin",
	})
	return token.SignedString(s.secret)
}

// Verify reports whether tokenString is validly signed with the current
// secret and unexpired. Malformed input, a wrong signature or a wrong
// signing algorithm all return false; Verify never panics.
func (s *Service) Verify(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return false
	}

	return token.Valid
}

// Login checks the submitted password and issues a session token. The
// configured password may be a bcrypt hash; otherwise comparison is
// constant-time over the raw values.
func (s *Service) Login(password string) (string, error) {
	if s.adminPassword == "" {
		return "", ErrLoginDisabled
	}

	if strings.HasPrefix(s.adminPassword, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)); err != nil {
			return "", ErrInvalidPassword
		}
	} else if subtle.ConstantTimeCompare([]byte(s.adminPassword), []byte(password)) != 1 {
		return "", ErrInvalidPassword
	}

	return s.Issue()
}
