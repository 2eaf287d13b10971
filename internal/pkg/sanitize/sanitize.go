// Package sanitize scrubs PII out of strings headed for the server logs.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
)

// Scrub masks email addresses and phone numbers so log lines never carry
// parent contact details. The local part keeps its first rune for
// correlating repeated failures.
func Scrub(s string) string {
	s = emailPattern.ReplaceAllStringFunc(s, func(m string) string {
		at := strings.IndexByte(m, '@')
		if at <= 1 {
			return "***" + m[at:]
		}

		return m[:1] + "***" + m[at:]
	})

	s = phonePattern.ReplaceAllStringFunc(s, func(m string) string {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < 4 {
			return "***"
		}

		tail := m[len(m)-4:]

		return "***-" + tail
	})

	return s
}

// ScrubErr is Scrub for error values, tolerating nil.
func ScrubErr(err error) string {
	if err == nil {
		return ""
	}

	return Scrub(err.Error())
}
