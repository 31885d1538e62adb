package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("").Valid())
	assert.False(t, Status("Approved").Valid())
	assert.False(t, Status("deleted").Valid())
}

func TestSeedListings(t *testing.T) {
	seed := SeedListings()

	assert.Equal(t, []Listing{
		{ID: 1, Car: "Toyota Corolla", Status: StatusPending},
		{ID: 2, Car: "Honda Civic", Status: StatusPending},
		{ID: 3, Car: "Ford Focus", Status: StatusPending},
	}, seed)

	// callers get their own copy
	seed[0].Car = "changed"
	assert.Equal(t, "Toyota Corolla", SeedListings()[0].Car)
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := &Session{ID: "s1", ExpiresAt: now.Add(time.Minute)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Minute)))
	assert.True(t, s.Expired(now.Add(time.Hour)))
}
