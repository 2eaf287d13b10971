package response

import (
	"github.com/courtside/trainings-api/internal/domain"
)

type Session struct {
	domain.Session

	Status string `json:"status"` // "open" or "full", computed
}

func NewSession(s domain.Session) Session {
	return Session{
		Session: s,
		Status:  s.Status(),
	}
}

func NewSessions(sessions []domain.Session) []Session {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		out[i] = NewSession(s)
	}

	return out
}

// CancellationPreview is what GET /cancel/{token} shows before the user
// confirms.
type CancellationPreview struct {
	PlayerName  string  `json:"player_name"`
	SessionDate string  `json:"session_date"`
	TimeRange   string  `json:"time_range"`
	Location    string  `json:"location"`
	Address     string  `json:"address"`
	Sport       string  `json:"sport"`
	Price       float64 `json:"price"`
}

type Message struct {
	Message string `json:"message"`
}

type ArchiveResult struct {
	Archived int64 `json:"archived"`
}

type LoginResult struct {
	Message string `json:"message"`
}
