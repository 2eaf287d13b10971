package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/notifier"
)

type fakeMailer struct {
	sent    []notifier.Email
	failFor map[string]bool
}

func (f *fakeMailer) Send(email notifier.Email) error {
	if f.failFor[email.To] {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, email)

	return nil
}

type recordingSMS struct {
	sent []string
	err  error
}

func (f *recordingSMS) Send(to, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)

	return nil
}

func notificationTestSession() domain.Session {
	return domain.Session{
		ID:        3,
		Sport:     "volleyball",
		AgeGroup:  "U14",
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TimeRange: "6:00 PM - 7:30 PM",
		Location:  "Community Center",
		Address:   "123 Main St, Springfield",
		Price:     25,
		Focus:     "Serving fundamentals",
	}
}

func TestNotificationService_SendRegistrationConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	sms := &recordingSMS{}
	svc := NewNotificationService(mailer, sms, "https://courtside-trainings.example")

	reg := domain.Registration{
		PlayerName:        "Emma Johnson",
		ParentName:        "Sarah Johnson",
		ParentEmail:       "sarah@example.com",
		ParentPhone:       "555-123-4567",
		CancellationToken: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}

	require.NoError(t, svc.SendRegistrationConfirmation(notificationTestSession(), reg))

	require.Len(t, mailer.sent, 1)
	email := mailer.sent[0]
	assert.Equal(t, "sarah@example.com", email.To)
	assert.Contains(t, email.Body, "Monday, January 15, 2024")
	assert.Contains(t, email.Body, "https://courtside-trainings.example/cancel/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	assert.Equal(t, "session.ics", email.AttachmentName)
	assert.Contains(t, string(email.Attachment), "BEGIN:VCALENDAR")

	assert.Equal(t, []string{"555-123-4567"}, sms.sent)
}

func TestNotificationService_SendRegistrationConfirmation_SMSFailureIgnored(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(mailer, &recordingSMS{err: notifier.ErrSMSNotConfigured}, "https://courtside-trainings.example")

	err := svc.SendRegistrationConfirmation(notificationTestSession(), domain.Registration{
		ParentEmail: "sarah@example.com",
		ParentPhone: "555-123-4567",
	})

	assert.NoError(t, err, "an unsent text never fails the confirmation")
	assert.Len(t, mailer.sent, 1)
}

func TestNotificationService_EmailFailureStillSendsSMS(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"sarah@example.com": true}}
	sms := &recordingSMS{}
	svc := NewNotificationService(mailer, sms, "https://courtside-trainings.example")

	reg := domain.Registration{
		PlayerName:  "Emma Johnson",
		ParentEmail: "sarah@example.com",
		ParentPhone: "555-123-4567",
	}

	err := svc.SendRegistrationConfirmation(notificationTestSession(), reg)
	assert.Error(t, err, "the email failure still surfaces")
	assert.Equal(t, []string{"555-123-4567"}, sms.sent, "the text goes out anyway")

	err = svc.SendCancellationNotice(notificationTestSession(), reg)
	assert.Error(t, err)
	assert.Equal(t, []string{"555-123-4567", "555-123-4567"}, sms.sent)
}

func TestNotificationService_SendWithInvite_BadTimeRange(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(mailer, &recordingSMS{}, "https://courtside-trainings.example")

	session := notificationTestSession()
	session.TimeRange = "whenever"

	err := svc.SendReminder(session, domain.Registration{ParentEmail: "sarah@example.com"})

	require.NoError(t, err, "a broken invite still sends the email")
	require.Len(t, mailer.sent, 1)
	assert.Empty(t, mailer.sent[0].Attachment)
}

func TestNotificationService_SendSessionUpdated_ContinuesPastFailures(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]bool{"bounce@example.com": true}}
	svc := NewNotificationService(mailer, &recordingSMS{}, "https://courtside-trainings.example")

	svc.SendSessionUpdated(notificationTestSession(), []domain.Registration{
		{ParentEmail: "sarah@example.com"},
		{ParentEmail: "bounce@example.com"},
		{ParentEmail: "olivia@example.com"},
	})

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "sarah@example.com", mailer.sent[0].To)
	assert.Equal(t, "olivia@example.com", mailer.sent[1].To)
}
