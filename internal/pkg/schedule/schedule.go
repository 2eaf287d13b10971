// Package schedule parses and formats the session date and 12-hour
// time-range strings used across the catalog, emails and calendar files.
// All parsing is anchored to UTC so a session never shifts a day
// depending on the server's local timezone.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout = "3:04 PM"
	dateLayout  = "2006-01-02"
)

// CancellationWindow is how long before the session start self-service
// cancellation closes.
const CancellationWindow = 24 * time.Hour

var ErrInvalidTimeRange = errors.New("time range must look like \"6:00 PM - 7:30 PM\"")

// TimeRange is a parsed "start - end" pair in 24-hour clock form.
type TimeRange struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// ParseTimeRange parses a 12-hour "6:00 PM - 7:30 PM" range string.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return TimeRange{}, ErrInvalidTimeRange
	}

	start, err := time.Parse(clockLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	end, err := time.Parse(clockLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	return TimeRange{
		StartHour:   start.Hour(),
		StartMinute: start.Minute(),
		EndHour:     end.Hour(),
		EndMinute:   end.Minute(),
	}, nil
}

// SessionStart combines a session date with its time-range string and
// returns the UTC start time.
func SessionStart(date time.Time, timeRange string) (time.Time, error) {
	tr, err := ParseTimeRange(timeRange)
	if err != nil {
		return time.Time{}, err
	}

	d := date.UTC()

	return time.Date(d.Year(), d.Month(), d.Day(), tr.StartHour, tr.StartMinute, 0, 0, time.UTC), nil
}

// SessionEnd is SessionStart's counterpart for the range's end clock.
// An end before the start is taken to cross midnight.
func SessionEnd(date time.Time, timeRange string) (time.Time, error) {
	tr, err := ParseTimeRange(timeRange)
	if err != nil {
		return time.Time{}, err
	}

	d := date.UTC()
	end := time.Date(d.Year(), d.Month(), d.Day(), tr.EndHour, tr.EndMinute, 0, 0, time.UTC)

	start := time.Date(d.Year(), d.Month(), d.Day(), tr.StartHour, tr.StartMinute, 0, 0, time.UTC)
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	return end, nil
}

// TokenExpiry computes when a cancellation token stops working.
func TokenExpiry(date time.Time, timeRange string) (time.Time, error) {
	start, err := SessionStart(date, timeRange)
	if err != nil {
		return time.Time{}, err
	}

	return start.Add(-CancellationWindow), nil
}

// FormatSessionDate renders an ISO date string as "Monday, January 15, 2024".
// The input is parsed as UTC, never through the local timezone.
func FormatSessionDate(isoDate string) (string, error) {
	d, err := time.Parse(dateLayout, isoDate)
	if err != nil {
		return "", fmt.Errorf("time.Parse -> %w", err)
	}

	return d.Format("Monday, January 2, 2006"), nil
}

// FormatDate is FormatSessionDate for an already-parsed timestamp.
func FormatDate(date time.Time) string {
	return date.UTC().Format("Monday, January 2, 2006")
}
