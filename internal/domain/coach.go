package domain

import "time"

// Coach is the single admin identity behind the panel.
type Coach struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Profile struct {
	DisplayName  string `json:"display_name"`
	Bio          string `json:"bio,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}
