package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/courtside/trainings-api/internal/domain"
)

type CronSessionRepository interface {
	ListVisibleByDateWindow(ctx context.Context, from, to time.Time) ([]domain.Session, error)
	ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type CronNotifier interface {
	SendReminder(session domain.Session, reg domain.Registration) error
}

// ReminderStats is what the cron endpoint reports back to the scheduler.
type ReminderStats struct {
	Sessions int `json:"sessions"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
}

// CronService backs the bearer-guarded daily jobs. Both jobs are driven
// by an external scheduler hitting the API; there are no in-process
// workers or timers.
type CronService struct {
	sessionRepo CronSessionRepository
	notifier    CronNotifier
}

func NewCronService(sessionRepo CronSessionRepository, notifier CronNotifier) *CronService {
	return &CronService{
		sessionRepo: sessionRepo,
		notifier:    notifier,
	}
}

// SendReminders emails every registrant of tomorrow's visible sessions.
// Sends are sequential and counted; a failure moves on to the next one.
func (s *CronService) SendReminders(ctx context.Context, now time.Time) (ReminderStats, error) {
	from := now.UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	sessions, err := s.sessionRepo.ListVisibleByDateWindow(ctx, from, to)
	if err != nil {
		return ReminderStats{}, fmt.Errorf("s.sessionRepo.ListVisibleByDateWindow -> %w", err)
	}

	stats := ReminderStats{Sessions: len(sessions)}
	for _, session := range sessions {
		for _, reg := range session.Registrations {
			if err := s.notifier.SendReminder(session, reg); err != nil {
				stats.Failed++
				continue
			}
			stats.Sent++
		}
	}

	zap.L().Info("session reminders dispatched",
		zap.Int("sessions", stats.Sessions),
		zap.Int("sent", stats.Sent),
		zap.Int("failed", stats.Failed))

	return stats, nil
}

// ArchiveOldSessions hides every visible session dated before yesterday.
func (s *CronService) ArchiveOldSessions(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UTC().Truncate(24 * time.Hour).Add(-24 * time.Hour)

	archived, err := s.sessionRepo.ArchiveBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("s.sessionRepo.ArchiveBefore -> %w", err)
	}

	if archived > 0 {
		zap.L().Info("archived past sessions", zap.Int64("archived", archived))
	}

	return archived, nil
}
