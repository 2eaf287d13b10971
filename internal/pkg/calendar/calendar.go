// Package calendar builds the ICS invites attached to session emails.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/pkg/schedule"
)

// Invite renders a single-event ICS file for a session. Times are UTC,
// derived from the session date and its time-range string.
func Invite(session domain.Session) ([]byte, error) {
	start, err := schedule.SessionStart(session.Date, session.TimeRange)
	if err != nil {
		return nil, fmt.Errorf("schedule.SessionStart -> %w", err)
	}

	end, err := schedule.SessionEnd(session.Date, session.TimeRange)
	if err != nil {
		return nil, fmt.Errorf("schedule.SessionEnd -> %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId("-//Courtside Trainings//Session Booking//EN")

	event := cal.AddEvent(fmt.Sprintf("session-%d-%s@courtside-trainings", session.ID, uuid.NewString()))
	event.SetCreatedTime(time.Now().UTC())
	event.SetDtStampTime(time.Now().UTC())
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(fmt.Sprintf("%s Training (%s)", title(session.Sport), session.AgeGroup))
	event.SetLocation(fmt.Sprintf("%s, %s", session.Location, session.Address))
	event.SetDescription(fmt.Sprintf("Focus: %s. Bring water and court shoes.", session.Focus))

	return []byte(cal.Serialize()), nil
}

func title(sport string) string {
	switch sport {
	case "volleyball":
		return "Volleyball"
	case "basketball":
		return "Basketball"
	default:
		return sport
	}
}
