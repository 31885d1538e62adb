package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"listingadmin/internal/common"
	"listingadmin/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", fmt.Errorf("listing 9: %w", common.ErrNotFound), http.StatusNotFound, `{"error":"listing not found"}`},
		{"validation", fmt.Errorf("car name is required: %w", common.ErrValidation), http.StatusBadRequest, `{"error":"car name is required: validation error"}`},
		{"unauthorized", common.ErrUnauthorized, http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{"unexpected", errors.New("disk I/O error"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, logger.Discard(), tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"listing-admin"}`, rec.Body.String())
}

func TestSessionCookie(t *testing.T) {
	c := sessionCookie("abc", 60, true)

	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 60, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}
