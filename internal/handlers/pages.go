package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"listingadmin/internal/common"
	"listingadmin/internal/dto"
	"listingadmin/internal/logger"
	"listingadmin/internal/middleware"
	"listingadmin/internal/models"
	"listingadmin/internal/services/feedback"
	"listingadmin/internal/services/listing"
	"listingadmin/internal/web"

	"github.com/go-chi/chi/v5"
)

// DashboardHandler renders the listings table with the filter taken from
// ?status= and ?q=, plus the session's pending feedback message.
func DashboardHandler(listings *listing.Service, notifier *feedback.Notifier, renderer *web.Renderer, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := listings.List(r.Context())
		if err != nil {
			logger.Error("Error loading listings: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		filter := dto.ListingFilter{
			Status: r.URL.Query().Get("status"),
			Search: r.URL.Query().Get("q"),
		}
		if filter.Status == "" {
			filter.Status = dto.FilterAll
		}

		data := web.DashboardData{
			Listings: listing.Filter(all, filter),
			Total:    len(all),
			Counts:   listing.Counts(all),
			Filter:   filter,
		}
		if msg, ok := notifier.Current(middleware.SessionID(r.Context())); ok {
			data.Feedback = &msg
		}

		if err := renderer.Render(w, http.StatusOK, web.DashboardPage, data); err != nil {
			logger.Error("Error rendering dashboard: %v", err)
		}
	}
}

// EditPageHandler renders the edit form for /edit/{id}.
func EditPageHandler(listings *listing.Service, renderer *web.Renderer, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadListing(w, r, listings, renderer, logger)
		if !ok {
			return
		}

		if err := renderer.Render(w, http.StatusOK, web.EditPage, web.EditData{Listing: *l, Car: l.Car}); err != nil {
			logger.Error("Error rendering edit page: %v", err)
		}
	}
}

// EditSubmitHandler handles the form post of the edit page when scripts
// are disabled.
func EditSubmitHandler(listings *listing.Service, notifier *feedback.Notifier, renderer *web.Renderer, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := loadListing(w, r, listings, renderer, logger)
		if !ok {
			return
		}

		car := r.FormValue("car")
		err := listings.Rename(r.Context(), l.ID, car)
		switch {
		case err == nil:
		case errors.Is(err, common.ErrValidation):
			data := web.EditData{Listing: *l, Car: car, Error: "Car name is required"}
			if err := renderer.Render(w, http.StatusBadRequest, web.EditPage, data); err != nil {
				logger.Error("Error rendering edit page: %v", err)
			}
			return
		default:
			logger.Error("Error renaming listing %d: %v", l.ID, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		logger.Info("Listing %d renamed", l.ID)
		notifier.Show(middleware.SessionID(r.Context()), feedback.KindSuccess, "Listing updated successfully")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// loadListing resolves the {id} route parameter, rendering the not-found
// page when it is not a known listing.
func loadListing(w http.ResponseWriter, r *http.Request, listings *listing.Service, renderer *web.Renderer, logger *logger.Logger) (*models.Listing, bool) {
	param := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(strings.TrimSpace(param), 10, 64)
	if err != nil {
		renderNotFound(w, renderer, logger, fmt.Sprintf("%q is not a listing id.", param))
		return nil, false
	}

	l, err := listings.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			renderNotFound(w, renderer, logger, fmt.Sprintf("Listing #%d does not exist.", id))
			return nil, false
		}
		logger.Error("Error loading listing %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return l, true
}

func renderNotFound(w http.ResponseWriter, renderer *web.Renderer, logger *logger.Logger, msg string) {
	if err := renderer.Render(w, http.StatusNotFound, web.NotFoundPage, web.NotFoundData{Message: msg}); err != nil {
		logger.Error("Error rendering not found page: %v", err)
	}
}
