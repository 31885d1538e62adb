// Package auth checks the admin password and manages login sessions.
//
// A session is a server-side record referenced by an HS256 JWT stored in
// the "token" cookie. A request is authenticated only when the signature
// verifies, the token is unexpired, and the record still exists, so logout
// revokes a token even before it expires.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"listingadmin/internal/common"
	"listingadmin/internal/models"
	"listingadmin/internal/repository"

	"github.com/google/uuid"
)

// CookieName is the session cookie.
const CookieName = "token"

type Service struct {
	sessions repository.SessionRepository
	password *PasswordChecker
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates the auth service. An empty secret is replaced by a
// random one, which invalidates all cookies on restart.
func NewService(sessions repository.SessionRepository, password *PasswordChecker, secret []byte, ttl time.Duration, opts ...Option) (*Service, error) {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}

	s := &Service{
		sessions: sessions,
		password: password,
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL is the lifetime of new sessions.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login checks password and, on success, opens a session and returns the
// signed cookie value with its expiry.
func (s *Service) Login(ctx context.Context, password string) (string, time.Time, error) {
	if !s.password.Check(password) {
		return "", time.Time{}, common.ErrInvalidPassword
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}

	token, err := GenerateToken(session.ID, s.secret, now, session.ExpiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}

	return token, session.ExpiresAt, nil
}

// Authenticate resolves a cookie value to its live session. Every failure
// is reported as common.ErrUnauthorized; storage errors are wrapped so the
// caller can log them.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, common.ErrUnauthorized
	}

	id, err := GetSessionIDFromToken(token, s.secret, s.now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: session revoked", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	if session.Expired(s.now()) {
		return nil, fmt.Errorf("%w: session expired", common.ErrUnauthorized)
	}

	return session, nil
}

// Logout deletes the session behind token. Invalid tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	id, err := GetSessionIDFromToken(token, s.secret, s.now)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, id)
}

// Sweep removes expired sessions.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}
