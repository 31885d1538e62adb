package handlers

import (
	"net/http"

	"listingadmin/internal/middleware"
	"listingadmin/internal/services/feedback"
)

// FeedbackHandler returns the session's current toast, or 204 when there is
// none.
func FeedbackHandler(notifier *feedback.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, ok := notifier.Current(middleware.SessionID(r.Context()))
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, msg)
	}
}
