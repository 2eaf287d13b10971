package domain

import "time"

type Registration struct {
	ID        uint `json:"id"`
	SessionID uint `json:"session_id"`

	PlayerName      string `json:"player_name"`
	PlayerAge       int    `json:"player_age"`
	ExperienceLevel string `json:"experience_level,omitempty"`

	ParentName  string `json:"parent_name"`
	ParentEmail string `json:"parent_email"`
	ParentPhone string `json:"parent_phone"`

	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	MedicalNotes     string `json:"medical_notes,omitempty"`

	CancellationToken string    `json:"-"`
	TokenExpiresAt    time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CancellationOpen reports whether the token is still usable at now.
// The window closes 24h before the session starts.
func (r Registration) CancellationOpen(now time.Time) bool {
	return now.Before(r.TokenExpiresAt)
}
