package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"listingadmin/internal/common"
	"listingadmin/internal/dto"
	"listingadmin/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

// writeServiceError maps a service error to its HTTP status. Unexpected
// errors are logged and reported without detail.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "listing not found")
	case errors.Is(err, common.ErrValidation):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		writeJSONError(w, http.StatusUnauthorized, "unauthorized")
	default:
		log.Error("Request failed: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
