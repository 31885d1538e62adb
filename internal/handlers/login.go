package handlers

import (
	"errors"
	"net/http"
	"time"

	"listingadmin/internal/common"
	"listingadmin/internal/config"
	"listingadmin/internal/logger"
	"listingadmin/internal/services/auth"
	"listingadmin/internal/web"
)

// sessionCookie builds the token cookie. A negative maxAge deletes it.
func sessionCookie(value string, maxAge int, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// LoginPageHandler renders the login form, or sends an already logged-in
// admin straight to the dashboard.
func LoginPageHandler(authService *auth.Service, renderer *web.Renderer, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(auth.CookieName); err == nil {
			if _, err := authService.Authenticate(r.Context(), cookie.Value); err == nil {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
		}

		if err := renderer.Render(w, http.StatusOK, web.LoginPage, web.LoginData{}); err != nil {
			logger.Error("Error rendering login page: %v", err)
		}
	}
}

// LoginHandler checks the submitted password and opens a session.
func LoginHandler(authService *auth.Service, renderer *web.Renderer, cfg *config.Config, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		password := r.FormValue("password")

		token, expires, err := authService.Login(r.Context(), password)
		if err != nil {
			if errors.Is(err, common.ErrInvalidPassword) {
				logger.Warning("Failed login attempt from %s", r.RemoteAddr)
				if err := renderer.Render(w, http.StatusUnauthorized, web.LoginPage, web.LoginData{Error: "Invalid Password"}); err != nil {
					logger.Error("Error rendering login page: %v", err)
				}
				return
			}
			logger.Error("Login failed: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		maxAge := int(time.Until(expires).Seconds())
		if maxAge <= 0 {
			maxAge = int(authService.TTL().Seconds())
		}
		http.SetCookie(w, sessionCookie(token, maxAge, cfg.CookieSecure))

		logger.Info("Admin logged in from %s", r.RemoteAddr)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
