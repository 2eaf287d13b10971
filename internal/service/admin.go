package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/repository"
)

var (
	ErrWrongPassword    = errors.New("wrong password")
	ErrLocationNotFound = repository.ErrLocationNotFound
	ErrCoachNotFound    = repository.ErrCoachNotFound
)

type AdminSessionRepository interface {
	Create(ctx context.Context, session domain.Session) (domain.Session, error)
	FindByID(ctx context.Context, id uint) (domain.Session, error)
	ListAll(ctx context.Context) ([]domain.Session, error)
	Update(ctx context.Context, session domain.Session) (domain.Session, error)
	SetVisibility(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
}

type AdminRegistrationRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Registration, error)
	Delete(ctx context.Context, id, sessionID uint) error
}

type LocationRepository interface {
	Remember(ctx context.Context, name, address string) error
	List(ctx context.Context) ([]domain.Location, error)
	Delete(ctx context.Context, id uint) error
}

type CoachRepository interface {
	Find(ctx context.Context) (domain.Coach, error)
	UpdateProfile(ctx context.Context, coachID uint, profile domain.Profile) (domain.Profile, error)
	UpdatePasswordHash(ctx context.Context, coachID uint, hash string) error
}

type AdminNotifier interface {
	SendSessionUpdated(session domain.Session, regs []domain.Registration)
	SendCancellationNotice(session domain.Session, reg domain.Registration) error
}

type AdminService struct {
	sessionRepo      AdminSessionRepository
	registrationRepo AdminRegistrationRepository
	locationRepo     LocationRepository
	coachRepo        CoachRepository
	notifier         AdminNotifier
}

func NewAdminService(
	sessionRepo AdminSessionRepository,
	registrationRepo AdminRegistrationRepository,
	locationRepo LocationRepository,
	coachRepo CoachRepository,
	notifier AdminNotifier,
) *AdminService {
	return &AdminService{
		sessionRepo:      sessionRepo,
		registrationRepo: registrationRepo,
		locationRepo:     locationRepo,
		coachRepo:        coachRepo,
		notifier:         notifier,
	}
}

// Login checks the password against the stored coach hash.
func (s *AdminService) Login(ctx context.Context, password string) (domain.Coach, error) {
	coach, err := s.coachRepo.Find(ctx)
	if err != nil {
		return domain.Coach{}, fmt.Errorf("s.coachRepo.Find -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(coach.PasswordHash), []byte(password)); err != nil {
		return domain.Coach{}, ErrWrongPassword
	}

	return coach, nil
}

func (s *AdminService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.sessionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.sessionRepo.ListAll -> %w", err)
	}

	return sessions, nil
}

func (s *AdminService) CreateSession(ctx context.Context, session domain.Session) (domain.Session, error) {
	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.sessionRepo.Create -> %w", err)
	}

	s.rememberLocation(ctx, created)

	return created, nil
}

// UpdateSession persists the edit, refreshes the location cache and, when
// a participant-visible field changed, emails every registrant the new
// details. Email failures never fail the update.
func (s *AdminService) UpdateSession(ctx context.Context, session domain.Session) (domain.Session, error) {
	old, err := s.sessionRepo.FindByID(ctx, session.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}

		return domain.Session{}, fmt.Errorf("s.sessionRepo.FindByID -> %w", err)
	}

	updated, err := s.sessionRepo.Update(ctx, session)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}

		return domain.Session{}, fmt.Errorf("s.sessionRepo.Update -> %w", err)
	}

	s.rememberLocation(ctx, updated)

	if old.Diff(updated).Any() && len(updated.Registrations) > 0 {
		session := updated
		go s.notifier.SendSessionUpdated(session, session.Registrations)
	}

	return updated, nil
}

func (s *AdminService) SetSessionVisibility(ctx context.Context, id uint, visible bool) error {
	if err := s.sessionRepo.SetVisibility(ctx, id, visible); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionNotFound
		}

		return fmt.Errorf("s.sessionRepo.SetVisibility -> %w", err)
	}

	return nil
}

func (s *AdminService) DeleteSession(ctx context.Context, id uint) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionNotFound
		}

		return fmt.Errorf("s.sessionRepo.Delete -> %w", err)
	}

	return nil
}

// RemoveRegistration lets the coach drop a participant; the parent gets
// the same cancellation notice a self-service cancel would send.
func (s *AdminService) RemoveRegistration(ctx context.Context, id uint) error {
	reg, err := s.registrationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return fmt.Errorf("s.registrationRepo.FindByID -> %w", err)
	}

	session, err := s.sessionRepo.FindByID(ctx, reg.SessionID)
	if err != nil {
		return fmt.Errorf("s.sessionRepo.FindByID -> %w", err)
	}

	if err := s.registrationRepo.Delete(ctx, reg.ID, reg.SessionID); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return fmt.Errorf("s.registrationRepo.Delete -> %w", err)
	}

	go func() {
		_ = s.notifier.SendCancellationNotice(session, reg)
	}()

	return nil
}

func (s *AdminService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.locationRepo.List -> %w", err)
	}

	return locations, nil
}

func (s *AdminService) DeleteLocation(ctx context.Context, id uint) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return ErrLocationNotFound
		}

		return fmt.Errorf("s.locationRepo.Delete -> %w", err)
	}

	return nil
}

func (s *AdminService) GetProfile(ctx context.Context) (domain.Profile, error) {
	coach, err := s.coachRepo.Find(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.coachRepo.Find -> %w", err)
	}

	return coach.Profile, nil
}

func (s *AdminService) UpdateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	coach, err := s.coachRepo.Find(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.coachRepo.Find -> %w", err)
	}

	updated, err := s.coachRepo.UpdateProfile(ctx, coach.ID, profile)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("s.coachRepo.UpdateProfile -> %w", err)
	}

	return updated, nil
}

// ChangePassword verifies the current password before storing a new hash.
// Strength rules sit in the request layer.
func (s *AdminService) ChangePassword(ctx context.Context, current, next string) error {
	coach, err := s.Login(ctx, current)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	if err := s.coachRepo.UpdatePasswordHash(ctx, coach.ID, string(hash)); err != nil {
		return fmt.Errorf("s.coachRepo.UpdatePasswordHash -> %w", err)
	}

	return nil
}

// rememberLocation keeps the address cache warm. It is a convenience
// table, so a failed upsert is logged and ignored.
func (s *AdminService) rememberLocation(ctx context.Context, session domain.Session) {
	if session.Location == "" || session.Address == "" {
		return
	}

	if err := s.locationRepo.Remember(ctx, session.Location, session.Address); err != nil {
		zap.L().Warn("location cache upsert failed",
			zap.Uint("session_id", session.ID), zap.Error(err))
	}
}
