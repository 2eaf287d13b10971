package notifier

import (
	"errors"

	"github.com/courtside/trainings-api/internal/config"
)

var ErrSMSNotConfigured = errors.New("sms provider not configured")

// SMSProvider sends a text message to a normalized phone number.
type SMSProvider interface {
	Send(to, body string) error
}

// NewSMSProvider picks the provider named in config. Only the stub ships
// today; a real gateway slots in here without touching the callers.
func NewSMSProvider(conf *config.SMSConfig) SMSProvider {
	switch conf.Provider {
	default:
		return &stubSMS{}
	}
}

// stubSMS always fails. Callers treat SMS as best-effort, so a failing
// stub exercises the same logging path a gateway outage would.
type stubSMS struct{}

func (s *stubSMS) Send(_, _ string) error {
	return ErrSMSNotConfigured
}
