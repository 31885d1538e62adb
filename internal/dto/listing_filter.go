// ListingFilter describes the dashboard status filter and search box.
package dto

// FilterAll disables the status filter.
const FilterAll = "all"

type ListingFilter struct {
	Status string // "all", "" or a moderation status
	Search string
}
