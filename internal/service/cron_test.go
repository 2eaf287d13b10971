package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/trainings-api/internal/domain"
)

type fakeCronSessionRepo struct {
	sessions []domain.Session
	gotFrom  time.Time
	gotTo    time.Time

	archived  int64
	gotCutoff time.Time
	err       error
}

func (f *fakeCronSessionRepo) ListVisibleByDateWindow(_ context.Context, from, to time.Time) ([]domain.Session, error) {
	f.gotFrom, f.gotTo = from, to

	return f.sessions, f.err
}

func (f *fakeCronSessionRepo) ArchiveBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.gotCutoff = cutoff

	return f.archived, f.err
}

type fakeReminderNotifier struct {
	failFor map[string]bool
	sent    []string
}

func (f *fakeReminderNotifier) SendReminder(_ domain.Session, reg domain.Registration) error {
	if f.failFor[reg.ParentEmail] {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, reg.ParentEmail)

	return nil
}

func TestCronService_SendReminders(t *testing.T) {
	repo := &fakeCronSessionRepo{
		sessions: []domain.Session{
			{
				ID: 1,
				Registrations: []domain.Registration{
					{ParentEmail: "sarah@example.com"},
					{ParentEmail: "bounce@example.com"},
				},
			},
			{
				ID: 2,
				Registrations: []domain.Registration{
					{ParentEmail: "olivia@example.com"},
				},
			},
		},
	}
	notifier := &fakeReminderNotifier{failFor: map[string]bool{"bounce@example.com": true}}
	svc := NewCronService(repo, notifier)

	now := time.Date(2024, 1, 14, 9, 30, 0, 0, time.UTC)
	stats, err := svc.SendReminders(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, ReminderStats{Sessions: 2, Sent: 2, Failed: 1}, stats)
	assert.Equal(t, []string{"sarah@example.com", "olivia@example.com"}, notifier.sent)

	// The window is tomorrow, midnight to midnight UTC.
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), repo.gotTo)
}

func TestCronService_SendReminders_RepoError(t *testing.T) {
	repo := &fakeCronSessionRepo{err: errors.New("db down")}
	svc := NewCronService(repo, &fakeReminderNotifier{})

	_, err := svc.SendReminders(context.Background(), time.Now())

	assert.Error(t, err)
}

func TestCronService_ArchiveOldSessions(t *testing.T) {
	repo := &fakeCronSessionRepo{archived: 3}
	svc := NewCronService(repo, &fakeReminderNotifier{})

	now := time.Date(2024, 1, 14, 9, 30, 0, 0, time.UTC)
	archived, err := svc.ArchiveOldSessions(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), archived)
	assert.Equal(t, time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), repo.gotCutoff)
}
