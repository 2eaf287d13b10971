package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/repository/dao"
)

var (
	ErrSessionNotFound = dao.ErrSessionNotFound
)

type SessionDAO interface {
	Insert(ctx context.Context, session dao.Session) (dao.Session, error)
	FindByID(ctx context.Context, id uint) (dao.Session, error)
	FindVisibleByID(ctx context.Context, id uint) (dao.Session, error)
	ListVisible(ctx context.Context) ([]dao.Session, error)
	ListAll(ctx context.Context) ([]dao.Session, error)
	ListVisibleByDateWindow(ctx context.Context, from, to time.Time) ([]dao.Session, error)
	Update(ctx context.Context, session dao.Session) (dao.Session, error)
	SetVisibility(ctx context.Context, id uint, visible bool) error
	Delete(ctx context.Context, id uint) error
	ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session domain.Session) (domain.Session, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(session))
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uint) (domain.Session, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SessionRepository) FindVisibleByID(ctx context.Context, id uint) (domain.Session, error) {
	found, err := r.dao.FindVisibleByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.FindVisibleByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SessionRepository) ListVisible(ctx context.Context) ([]domain.Session, error) {
	found, err := r.dao.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListVisible -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SessionRepository) ListAll(ctx context.Context) ([]domain.Session, error) {
	found, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SessionRepository) ListVisibleByDateWindow(ctx context.Context, from, to time.Time) ([]domain.Session, error) {
	found, err := r.dao.ListVisibleByDateWindow(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListVisibleByDateWindow -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SessionRepository) Update(ctx context.Context, session domain.Session) (domain.Session, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(session))
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SessionRepository) SetVisibility(ctx context.Context, id uint, visible bool) error {
	if err := r.dao.SetVisibility(ctx, id, visible); err != nil {
		return fmt.Errorf("r.dao.SetVisibility -> %w", err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SessionRepository) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	archived, err := r.dao.ArchiveBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("r.dao.ArchiveBefore -> %w", err)
	}

	return archived, nil
}

func (r *SessionRepository) domainToDAO(s domain.Session) dao.Session {
	return dao.Session{
		ID:                  s.ID,
		Sport:               s.Sport,
		AgeGroup:            s.AgeGroup,
		Date:                s.Date,
		TimeRange:           s.TimeRange,
		Location:            s.Location,
		Address:             s.Address,
		MaxParticipants:     s.MaxParticipants,
		CurrentParticipants: s.CurrentParticipants,
		Price:               s.Price,
		Focus:               s.Focus,
		IsVisible:           s.IsVisible,
	}
}

func (r *SessionRepository) daoToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:                  s.ID,
		Sport:               s.Sport,
		AgeGroup:            s.AgeGroup,
		Date:                s.Date,
		TimeRange:           s.TimeRange,
		Location:            s.Location,
		Address:             s.Address,
		MaxParticipants:     s.MaxParticipants,
		CurrentParticipants: s.CurrentParticipants,
		Price:               s.Price,
		Focus:               s.Focus,
		IsVisible:           s.IsVisible,
		Registrations:       registrationDAOsToDomain(s.Registrations),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func (r *SessionRepository) daosToDomain(sessions []dao.Session) []domain.Session {
	out := make([]domain.Session, len(sessions))
	for i, s := range sessions {
		out[i] = r.daoToDomain(s)
	}

	return out
}
