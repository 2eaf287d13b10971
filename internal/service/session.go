package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/repository"
)

type SessionRepository interface {
	ListVisible(ctx context.Context) ([]domain.Session, error)
	FindVisibleByID(ctx context.Context, id uint) (domain.Session, error)
}

// SessionService serves the public catalog: visible sessions only.
type SessionService struct {
	repo SessionRepository
}

func NewSessionService(repo SessionRepository) *SessionService {
	return &SessionService{
		repo: repo,
	}
}

func (s *SessionService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.repo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListVisible -> %w", err)
	}

	return sessions, nil
}

func (s *SessionService) GetSession(ctx context.Context, id uint) (domain.Session, error) {
	session, err := s.repo.FindVisibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}

		return domain.Session{}, fmt.Errorf("s.repo.FindVisibleByID -> %w", err)
	}

	return session, nil
}
