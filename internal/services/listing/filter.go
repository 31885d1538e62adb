package listing

import (
	"strconv"
	"strings"

	"listingadmin/internal/dto"
	"listingadmin/internal/models"
)

// Filter applies the status filter and then the search term, keeping input
// order. An empty or "all" status keeps every status. The term matches a
// case-insensitive substring of the car name or a substring of the id.
func Filter(listings []models.Listing, f dto.ListingFilter) []models.Listing {
	out := make([]models.Listing, 0, len(listings))
	term := strings.ToLower(f.Search)

	for _, l := range listings {
		if f.Status != "" && f.Status != dto.FilterAll && string(l.Status) != f.Status {
			continue
		}
		if term != "" && !matches(l, term) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matches(l models.Listing, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(l.Car), lowerTerm) ||
		strings.Contains(strconv.FormatInt(l.ID, 10), lowerTerm)
}

// Counts builds the dashboard filter buttons, each counting over the full set.
func Counts(listings []models.Listing) []dto.StatusCount {
	byStatus := make(map[models.Status]int, len(models.Statuses))
	for _, l := range listings {
		byStatus[l.Status]++
	}

	counts := []dto.StatusCount{{Value: dto.FilterAll, Label: "All Listings", Count: len(listings)}}
	for _, s := range models.Statuses {
		counts = append(counts, dto.StatusCount{Value: string(s), Label: Label(s), Count: byStatus[s]})
	}
	return counts
}

// Label capitalizes a status for display.
func Label(s models.Status) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
