package handlers

import (
	"net/http"

	"listingadmin/internal/config"
	"listingadmin/internal/logger"
	"listingadmin/internal/middleware"
	"listingadmin/internal/services/auth"
	"listingadmin/internal/services/feedback"
)

// LogoutHandler deletes the session, clears the cookie and redirects to the
// login page. It expects middleware.LoadSession in front of it.
func LogoutHandler(authService *auth.Service, notifier *feedback.Notifier, cfg *config.Config, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.SessionID(r.Context()); id != "" {
			notifier.Clear(id)
		}

		if cookie, err := r.Cookie(auth.CookieName); err == nil {
			if err := authService.Logout(r.Context(), cookie.Value); err != nil {
				logger.Error("Error deleting session: %v", err)
			}
		}

		http.SetCookie(w, sessionCookie("", -1, cfg.CookieSecure))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
