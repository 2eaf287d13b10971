package repository

import (
	"context"
	"fmt"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/repository/dao"
)

var ErrCoachNotFound = dao.ErrCoachNotFound

type CoachDAO interface {
	FindFirst(ctx context.Context) (dao.Coach, error)
	UpdateProfile(ctx context.Context, coachID uint, profile dao.CoachProfile) (dao.CoachProfile, error)
	UpdatePasswordHash(ctx context.Context, coachID uint, hash string) error
}

type CoachRepository struct {
	dao CoachDAO
}

func NewCoachRepository(dao CoachDAO) *CoachRepository {
	return &CoachRepository{
		dao: dao,
	}
}

func (r *CoachRepository) Find(ctx context.Context) (domain.Coach, error) {
	found, err := r.dao.FindFirst(ctx)
	if err != nil {
		return domain.Coach{}, fmt.Errorf("r.dao.FindFirst -> %w", err)
	}

	return coachDAOToDomain(found), nil
}

func (r *CoachRepository) UpdateProfile(ctx context.Context, coachID uint, profile domain.Profile) (domain.Profile, error) {
	updated, err := r.dao.UpdateProfile(ctx, coachID, dao.CoachProfile{
		DisplayName:  profile.DisplayName,
		Bio:          profile.Bio,
		ContactPhone: profile.ContactPhone,
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("r.dao.UpdateProfile -> %w", err)
	}

	return profileDAOToDomain(updated), nil
}

func (r *CoachRepository) UpdatePasswordHash(ctx context.Context, coachID uint, hash string) error {
	if err := r.dao.UpdatePasswordHash(ctx, coachID, hash); err != nil {
		return fmt.Errorf("r.dao.UpdatePasswordHash -> %w", err)
	}

	return nil
}

func coachDAOToDomain(c dao.Coach) domain.Coach {
	return domain.Coach{
		ID:           c.ID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Profile:      profileDAOToDomain(c.Profile),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func profileDAOToDomain(p dao.CoachProfile) domain.Profile {
	return domain.Profile{
		DisplayName:  p.DisplayName,
		Bio:          p.Bio,
		ContactPhone: p.ContactPhone,
	}
}
