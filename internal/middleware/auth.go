package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"listingadmin/internal/dto"
	"listingadmin/internal/models"
	"listingadmin/internal/services/auth"
)

// Authenticator resolves a session cookie value to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

type sessionKey struct{}

// SessionFrom returns the session attached by one of the auth middlewares.
func SessionFrom(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*models.Session)
	return s, ok && s != nil
}

// SessionID is SessionFrom reduced to the id, or "" without a session.
func SessionID(ctx context.Context) string {
	if s, ok := SessionFrom(ctx); ok {
		return s.ID
	}
	return ""
}

func withSession(r *http.Request, s *models.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionKey{}, s))
}

func lookup(authn Authenticator, r *http.Request) (*models.Session, bool) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	s, err := authn.Authenticate(r.Context(), cookie.Value)
	if err != nil {
		return nil, false
	}
	return s, true
}

// RequireSession guards server-rendered pages. Requests without a valid
// session are redirected to the login page and go no further.
func RequireSession(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := lookup(authn, r)
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			next.ServeHTTP(w, withSession(r, s))
		})
	}
}

// RequireAPISession guards JSON endpoints with a 401 instead of a redirect.
func RequireAPISession(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := lookup(authn, r)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "unauthorized"})
				return
			}
			next.ServeHTTP(w, withSession(r, s))
		})
	}
}

// LoadSession attaches the session when the cookie is valid and lets every
// request through. Used for the public API mode.
func LoadSession(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, ok := lookup(authn, r); ok {
				r = withSession(r, s)
			}
			next.ServeHTTP(w, r)
		})
	}
}
