package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/trainings-api/internal/domain"
)

func TestInvite(t *testing.T) {
	session := domain.Session{
		ID:        7,
		Sport:     "volleyball",
		AgeGroup:  "U14",
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TimeRange: "6:00 PM - 7:30 PM",
		Location:  "Westside Gym",
		Address:   "100 Main St",
		Focus:     "serving and passing",
	}

	got, err := Invite(session)
	require.NoError(t, err)

	ics := string(got)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "BEGIN:VEVENT")
	assert.Contains(t, ics, "DTSTART:20240115T180000Z")
	assert.Contains(t, ics, "DTEND:20240115T193000Z")
	assert.Contains(t, ics, "Volleyball Training (U14)")
	assert.Contains(t, ics, "END:VCALENDAR")
}

func TestInvite_BadTimeRange(t *testing.T) {
	session := domain.Session{
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TimeRange: "sometime in the evening",
	}

	_, err := Invite(session)
	assert.Error(t, err)
}
