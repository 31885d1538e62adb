package models

// Status is the moderation state of a listing. The store keeps whatever
// string it is given; Valid is checked at the HTTP boundary.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Statuses lists the moderation states in display order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Valid reports whether s is one of the known moderation states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Listing represents a car listing under moderation.
type Listing struct {
	ID     int64  `json:"id" db:"id"`
	Car    string `json:"car" db:"car"`
	Status Status `json:"status" db:"status"`
}

// SeedListings returns the rows every fresh store starts with.
func SeedListings() []Listing {
	return []Listing{
		{ID: 1, Car: "Toyota Corolla", Status: StatusPending},
		{ID: 2, Car: "Honda Civic", Status: StatusPending},
		{ID: 3, Car: "Ford Focus", Status: StatusPending},
	}
}
