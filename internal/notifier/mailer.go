package notifier

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/courtside/trainings-api/internal/config"
)

// Email is one outbound message, optionally carrying an ICS attachment.
type Email struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

type Mailer interface {
	Send(email Email) error
}

// SMTPMailer delivers through a plain SMTP relay via gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(conf *config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
		from:   conf.From,
	}
}

func (m *SMTPMailer) Send(email Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	if len(email.Attachment) > 0 {
		attachment := email.Attachment
		msg.Attach(email.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(attachment)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {"text/calendar; method=REQUEST"},
			}),
		)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("dialer.DialAndSend -> %w", err)
	}

	return nil
}
