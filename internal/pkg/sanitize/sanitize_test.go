package sanitize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrub(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "email masked keeping first rune",
			input: "send to emma.johnson@example.com failed",
			want:  "send to e***@example.com failed",
		},
		{
			name:  "phone keeps last four digits",
			input: "sms to 555-123-4567 failed",
			want:  "sms to ***-4567 failed",
		},
		{
			name:  "plain message untouched",
			input: "dial tcp: connection refused",
			want:  "dial tcp: connection refused",
		},
		{
			name:  "multiple emails",
			input: "a@x.com and b@y.org",
			want:  "***@x.com and ***@y.org",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scrub(tt.input))
		})
	}
}

func TestScrubErr(t *testing.T) {
	assert.Equal(t, "", ScrubErr(nil))
	assert.Equal(t, "u***@example.com rejected", ScrubErr(errors.New("user@example.com rejected")))
}
