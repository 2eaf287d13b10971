package domain

import "time"

// Session statuses are computed from the participant count, never stored.
const (
	SessionOpen = "open"
	SessionFull = "full"
)

type Session struct {
	ID                  uint           `json:"id"`
	Sport               string         `json:"sport"` // "volleyball" or "basketball"
	AgeGroup            string         `json:"age_group"`
	Date                time.Time      `json:"date"`
	TimeRange           string         `json:"time_range"` // e.g. "6:00 PM - 7:30 PM"
	Location            string         `json:"location"`
	Address             string         `json:"address"`
	MaxParticipants     int            `json:"max_participants"`
	Price               float64        `json:"price"`
	Focus               string         `json:"focus"`
	IsVisible           bool           `json:"is_visible"`
	CurrentParticipants int            `json:"current_participants"`
	Registrations       []Registration `json:"registrations,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// Status reports "open" or "full" from the cached participant count.
func (s Session) Status() string {
	if s.CurrentParticipants >= s.MaxParticipants {
		return SessionFull
	}

	return SessionOpen
}

// SessionChanges is the admin-edit diff that decides whether registered
// participants get an "updated session" notification.
type SessionChanges struct {
	Date      bool
	TimeRange bool
	Location  bool
	Address   bool
	Focus     bool
	Price     bool
}

func (c SessionChanges) Any() bool {
	return c.Date || c.TimeRange || c.Location || c.Address || c.Focus || c.Price
}

// Diff compares the persisted fields participants care about.
func (s Session) Diff(updated Session) SessionChanges {
	return SessionChanges{
		Date:      !s.Date.Equal(updated.Date),
		TimeRange: s.TimeRange != updated.TimeRange,
		Location:  s.Location != updated.Location,
		Address:   s.Address != updated.Address,
		Focus:     s.Focus != updated.Focus,
		Price:     s.Price != updated.Price,
	}
}
