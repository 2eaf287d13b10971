package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/pkg/schedule"
	"github.com/courtside/trainings-api/internal/repository"
)

var (
	ErrSessionNotFound       = repository.ErrSessionNotFound
	ErrSessionFull           = repository.ErrSessionFull
	ErrDuplicateRegistration = repository.ErrDuplicateRegistration
	ErrRegistrationNotFound  = repository.ErrRegistrationNotFound
	ErrTokenExpired          = errors.New("cancellation window has closed")
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	Delete(ctx context.Context, id, sessionID uint) error
	FindByID(ctx context.Context, id uint) (domain.Registration, error)
	FindByToken(ctx context.Context, token string) (domain.Registration, error)
	FindBySessionEmailAndName(ctx context.Context, sessionID uint, email, playerName string) (domain.Registration, error)
}

type RegistrationSessionRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Session, error)
	FindVisibleByID(ctx context.Context, id uint) (domain.Session, error)
}

type RegistrationNotifier interface {
	SendRegistrationConfirmation(session domain.Session, reg domain.Registration) error
	SendCancellationNotice(session domain.Session, reg domain.Registration) error
}

type RegistrationService struct {
	repo        RegistrationRepository
	sessionRepo RegistrationSessionRepository
	notifier    RegistrationNotifier
}

func NewRegistrationService(repo RegistrationRepository, sessionRepo RegistrationSessionRepository, notifier RegistrationNotifier) *RegistrationService {
	return &RegistrationService{
		repo:        repo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
	}
}

// Register signs a player up for a session. Capacity and duplicate checks
// run inside the repository transaction; the confirmation email and SMS
// fire after commit and never affect the result.
func (s *RegistrationService) Register(ctx context.Context, sessionID uint, reg domain.Registration) (domain.Registration, error) {
	session, err := s.sessionRepo.FindVisibleByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Registration{}, ErrSessionNotFound
		}

		return domain.Registration{}, fmt.Errorf("s.sessionRepo.FindVisibleByID -> %w", err)
	}

	expiry, err := schedule.TokenExpiry(session.Date, session.TimeRange)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("schedule.TokenExpiry -> %w", err)
	}

	reg.SessionID = session.ID
	reg.TokenExpiresAt = expiry

	var created domain.Registration
	for attempt := 0; attempt < 2; attempt++ {
		reg.CancellationToken, err = newCancellationToken()
		if err != nil {
			return domain.Registration{}, fmt.Errorf("newCancellationToken -> %w", err)
		}

		created, err = s.repo.Create(ctx, reg)
		if errors.Is(err, repository.ErrTokenCollision) {
			continue
		}

		break
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return domain.Registration{}, ErrSessionNotFound
		case errors.Is(err, repository.ErrSessionFull):
			return domain.Registration{}, ErrSessionFull
		case errors.Is(err, repository.ErrDuplicateRegistration):
			return domain.Registration{}, ErrDuplicateRegistration
		}

		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	go func() {
		_ = s.notifier.SendRegistrationConfirmation(session, created)
	}()

	return created, nil
}

// ResolveToken maps a cancellation token to its registration and session,
// for the confirmation page shown before the actual cancellation.
func (s *RegistrationService) ResolveToken(ctx context.Context, token string) (domain.Registration, domain.Session, error) {
	reg, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domain.Registration{}, domain.Session{}, ErrRegistrationNotFound
		}

		return domain.Registration{}, domain.Session{}, fmt.Errorf("s.repo.FindByToken -> %w", err)
	}

	if !reg.CancellationOpen(time.Now().UTC()) {
		return domain.Registration{}, domain.Session{}, ErrTokenExpired
	}

	session, err := s.sessionRepo.FindByID(ctx, reg.SessionID)
	if err != nil {
		return domain.Registration{}, domain.Session{}, fmt.Errorf("s.sessionRepo.FindByID -> %w", err)
	}

	return reg, session, nil
}

// CancelByToken deletes the registration behind a still-valid token and
// decrements the session counter atomically. The token dies with the row,
// so a second call comes back not-found.
func (s *RegistrationService) CancelByToken(ctx context.Context, token string) error {
	reg, session, err := s.ResolveToken(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reg.ID, reg.SessionID); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	go func() {
		_ = s.notifier.SendCancellationNotice(session, reg)
	}()

	return nil
}

// CancelManual is the email+name fallback for parents who lost the link.
// No expiry applies; the lookup tolerates the trailing-space quirk in
// legacy player names.
func (s *RegistrationService) CancelManual(ctx context.Context, sessionID uint, email, playerName string) error {
	reg, err := s.repo.FindBySessionEmailAndName(ctx, sessionID, email, playerName)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return fmt.Errorf("s.repo.FindBySessionEmailAndName -> %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, reg.SessionID)
	if err != nil {
		return fmt.Errorf("s.sessionRepo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, reg.ID, reg.SessionID); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	go func() {
		_ = s.notifier.SendCancellationNotice(session, reg)
	}()

	return nil
}

// newCancellationToken returns 32 hex chars from crypto/rand.
func newCancellationToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
