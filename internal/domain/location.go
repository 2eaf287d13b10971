package domain

import "time"

// Location is a convenience cache of distinct addresses used across
// sessions. There is no foreign key back to Session.Location, which
// stays a plain string.
type Location struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	LastUsed time.Time `json:"last_used"`
}
