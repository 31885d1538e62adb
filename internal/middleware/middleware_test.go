package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"listingadmin/internal/common"
	"listingadmin/internal/logger"
	"listingadmin/internal/models"
	"listingadmin/internal/services/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth map[string]*models.Session

func (f fakeAuth) Authenticate(_ context.Context, token string) (*models.Session, error) {
	if s, ok := f[token]; ok {
		return s, nil
	}
	return nil, common.ErrUnauthorized
}

var authn = fakeAuth{"good": {ID: "session-1"}}

// protected records whether it ran and which session it saw.
type protected struct {
	called    bool
	sessionID string
}

func (p *protected) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.called = true
	p.sessionID = SessionID(r.Context())
	w.Write([]byte("secret listings"))
}

func request(cookie string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}
	return req
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		wantOK bool
	}{
		{"no cookie", "", false},
		{"forged literal", "valid", false},
		{"valid session", "good", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &protected{}
			rec := httptest.NewRecorder()

			RequireSession(authn)(next).ServeHTTP(rec, request(tt.cookie))

			if tt.wantOK {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.True(t, next.called)
				assert.Equal(t, "session-1", next.sessionID)
				return
			}
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			assert.False(t, next.called, "handler must not run after the redirect")
			assert.NotContains(t, rec.Body.String(), "secret listings")
		})
	}
}

func TestRequireAPISession(t *testing.T) {
	next := &protected{}
	rec := httptest.NewRecorder()

	RequireAPISession(authn)(next).ServeHTTP(rec, request("valid"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
	assert.False(t, next.called)

	rec = httptest.NewRecorder()
	RequireAPISession(authn)(next).ServeHTTP(rec, request("good"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-1", next.sessionID)
}

func TestLoadSession(t *testing.T) {
	next := &protected{}
	rec := httptest.NewRecorder()
	LoadSession(authn)(next).ServeHTTP(rec, request(""))
	assert.True(t, next.called)
	assert.Empty(t, next.sessionID)

	next = &protected{}
	LoadSession(authn)(next).ServeHTTP(httptest.NewRecorder(), request("good"))
	assert.Equal(t, "session-1", next.sessionID)
}

func TestSessionFrom_Empty(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)
	assert.Empty(t, SessionID(context.Background()))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(slog.NewTextHandler(&buf, nil))

	h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/listings", nil))

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "POST /api/listings 418")
	assert.Contains(t, out, "request_id=")
}

func TestRequestLogger_ServerErrorsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(slog.NewTextHandler(&buf, nil))

	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "level=ERROR")
}
