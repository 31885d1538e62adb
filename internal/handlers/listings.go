package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"listingadmin/internal/dto"
	"listingadmin/internal/logger"
	"listingadmin/internal/middleware"
	"listingadmin/internal/models"
	"listingadmin/internal/services/feedback"
	"listingadmin/internal/services/listing"
)

// ListingsHandler serves /api/listings: GET reads, POST changes the
// moderation status and PUT renames.
func ListingsHandler(listings *listing.Service, notifier *feedback.Notifier, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("id") != "" {
				getListing(w, r, listings, logger)
				return
			}
			listListings(w, r, listings, logger)
		case http.MethodPost:
			setListingStatus(w, r, listings, notifier, logger)
		case http.MethodPut:
			renameListing(w, r, listings, notifier, logger)
		default:
			w.Header().Set("Allow", "GET, POST, PUT")
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}

func listListings(w http.ResponseWriter, r *http.Request, listings *listing.Service, logger *logger.Logger) {
	all, err := listings.List(r.Context())
	if err != nil {
		writeServiceError(w, logger, err)
		return
	}

	query := r.URL.Query()
	filtered := listing.Filter(all, dto.ListingFilter{
		Status: query.Get("status"),
		Search: query.Get("q"),
	})
	writeJSON(w, http.StatusOK, filtered)
}

func getListing(w http.ResponseWriter, r *http.Request, listings *listing.Service, logger *logger.Logger) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid id")
		return
	}

	l, err := listings.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, logger, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func setListingStatus(w http.ResponseWriter, r *http.Request, listings *listing.Service, notifier *feedback.Notifier, logger *logger.Logger) {
	var req dto.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := listings.SetStatus(r.Context(), int64(req.ID), models.Status(req.Action)); err != nil {
		writeServiceError(w, logger, err)
		return
	}

	logger.Info("Listing %d set to %s", req.ID, req.Action)
	notifier.Show(middleware.SessionID(r.Context()), feedback.KindSuccess,
		fmt.Sprintf("%s action performed successfully", req.Action))
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func renameListing(w http.ResponseWriter, r *http.Request, listings *listing.Service, notifier *feedback.Notifier, logger *logger.Logger) {
	var req dto.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := listings.Rename(r.Context(), int64(req.ID), req.Car); err != nil {
		writeServiceError(w, logger, err)
		return
	}

	logger.Info("Listing %d renamed", req.ID)
	notifier.Show(middleware.SessionID(r.Context()), feedback.KindSuccess, "Listing updated successfully")
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}
