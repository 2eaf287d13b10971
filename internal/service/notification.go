package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/notifier"
	"github.com/courtside/trainings-api/internal/pkg/calendar"
	"github.com/courtside/trainings-api/internal/pkg/sanitize"
	"github.com/courtside/trainings-api/internal/pkg/schedule"
)

// NotificationService sends the best-effort emails and texts fired after
// a registration, cancellation or session edit. Nothing here ever rolls
// back the transaction that triggered it; failures are logged (scrubbed
// of contact details) and swallowed by the callers that don't count them.
type NotificationService struct {
	mailer  notifier.Mailer
	sms     notifier.SMSProvider
	baseURL string
}

func NewNotificationService(mailer notifier.Mailer, sms notifier.SMSProvider, baseURL string) *NotificationService {
	return &NotificationService{
		mailer:  mailer,
		sms:     sms,
		baseURL: baseURL,
	}
}

func (s *NotificationService) SendRegistrationConfirmation(session domain.Session, reg domain.Registration) error {
	body := fmt.Sprintf(
		"Hi %s,\n\n%s is registered for the %s training session on %s, %s at %s (%s).\n\n"+
			"Price: $%.2f\nFocus: %s\n\n"+
			"Need to cancel? Use this link until 24 hours before the session:\n%s\n\nSee you on the court!",
		reg.ParentName, reg.PlayerName, session.Sport,
		schedule.FormatDate(session.Date), session.TimeRange, session.Location, session.Address,
		session.Price, session.Focus,
		s.cancellationURL(reg.CancellationToken),
	)

	// Email and SMS fail independently; a relay outage on one channel
	// never suppresses the other.
	emailErr := s.sendWithInvite(session, reg.ParentEmail, "Registration confirmed", body)

	s.sendSMS(reg.ParentPhone, fmt.Sprintf(
		"%s is registered for %s training on %s. Check your email for details.",
		reg.PlayerName, session.Sport, schedule.FormatDate(session.Date)))

	return emailErr
}

func (s *NotificationService) SendCancellationNotice(session domain.Session, reg domain.Registration) error {
	body := fmt.Sprintf(
		"Hi %s,\n\n%s's registration for the %s training session on %s has been cancelled.\n\n"+
			"The spot is open again, so feel free to re-register if plans change.",
		reg.ParentName, reg.PlayerName, session.Sport, schedule.FormatDate(session.Date),
	)

	emailErr := s.mailer.Send(notifier.Email{
		To:      reg.ParentEmail,
		Subject: "Registration cancelled",
		Body:    body,
	})
	if emailErr != nil {
		zap.L().Warn("cancellation email failed",
			zap.Uint("session_id", session.ID),
			zap.String("error", sanitize.ScrubErr(emailErr)))
	}

	s.sendSMS(reg.ParentPhone, fmt.Sprintf(
		"%s's registration for %s on %s was cancelled.",
		reg.PlayerName, session.Sport, schedule.FormatDate(session.Date)))

	return emailErr
}

// SendSessionUpdated notifies every registered participant after an admin
// edit changed a field they care about. One failing address doesn't stop
// the rest.
func (s *NotificationService) SendSessionUpdated(session domain.Session, regs []domain.Registration) {
	body := fmt.Sprintf(
		"Hi,\n\nThe %s training session you're registered for has been updated.\n\n"+
			"New details:\nDate: %s\nTime: %s\nLocation: %s (%s)\nFocus: %s\nPrice: $%.2f\n\n"+
			"An updated calendar invite is attached.",
		session.Sport, schedule.FormatDate(session.Date), session.TimeRange,
		session.Location, session.Address, session.Focus, session.Price,
	)

	for _, reg := range regs {
		if err := s.sendWithInvite(session, reg.ParentEmail, "Session updated", body); err != nil {
			continue
		}
	}
}

func (s *NotificationService) SendReminder(session domain.Session, reg domain.Registration) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder that %s has %s training tomorrow, %s, %s at %s (%s).\n\nFocus: %s",
		reg.ParentName, reg.PlayerName, session.Sport,
		schedule.FormatDate(session.Date), session.TimeRange,
		session.Location, session.Address, session.Focus,
	)

	return s.sendWithInvite(session, reg.ParentEmail, "Training session tomorrow", body)
}

func (s *NotificationService) sendWithInvite(session domain.Session, to, subject, body string) error {
	email := notifier.Email{
		To:      to,
		Subject: subject,
		Body:    body,
	}

	invite, err := calendar.Invite(session)
	if err != nil {
		// Send without the attachment rather than not at all.
		zap.L().Warn("calendar invite generation failed",
			zap.Uint("session_id", session.ID), zap.Error(err))
	} else {
		email.Attachment = invite
		email.AttachmentName = "session.ics"
	}

	if err := s.mailer.Send(email); err != nil {
		zap.L().Warn("email send failed",
			zap.Uint("session_id", session.ID),
			zap.String("subject", subject),
			zap.String("error", sanitize.ScrubErr(err)))

		return err
	}

	return nil
}

func (s *NotificationService) sendSMS(to, body string) {
	if err := s.sms.Send(to, body); err != nil {
		zap.L().Warn("sms send failed", zap.String("error", sanitize.ScrubErr(err)))
	}
}

func (s *NotificationService) cancellationURL(token string) string {
	return fmt.Sprintf("%s/cancel/%s", s.baseURL, token)
}
