package repository

import (
	"context"
	"fmt"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/repository/dao"
)

var (
	ErrRegistrationNotFound  = dao.ErrRegistrationNotFound
	ErrSessionFull           = dao.ErrSessionFull
	ErrDuplicateRegistration = dao.ErrDuplicateRegistration
	ErrTokenCollision        = dao.ErrTokenCollision
)

type RegistrationDAO interface {
	InsertWithCount(ctx context.Context, registration dao.Registration) (dao.Registration, error)
	DeleteWithCount(ctx context.Context, id, sessionID uint) error
	FindByID(ctx context.Context, id uint) (dao.Registration, error)
	FindByToken(ctx context.Context, token string) (dao.Registration, error)
	FindBySessionEmailAndName(ctx context.Context, sessionID uint, email, playerName string) (dao.Registration, error)
	ListBySession(ctx context.Context, sessionID uint) ([]dao.Registration, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

// Create inserts the registration and bumps the session counter as one
// transaction; capacity and duplicate checks happen inside it.
func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	created, err := r.dao.InsertWithCount(ctx, registrationDomainToDAO(registration))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.InsertWithCount -> %w", err)
	}

	return registrationDAOToDomain(created), nil
}

// Delete removes the registration and decrements the counter atomically.
func (r *RegistrationRepository) Delete(ctx context.Context, id, sessionID uint) error {
	if err := r.dao.DeleteWithCount(ctx, id, sessionID); err != nil {
		return fmt.Errorf("r.dao.DeleteWithCount -> %w", err)
	}

	return nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uint) (domain.Registration, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return registrationDAOToDomain(found), nil
}

func (r *RegistrationRepository) FindByToken(ctx context.Context, token string) (domain.Registration, error) {
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByToken -> %w", err)
	}

	return registrationDAOToDomain(found), nil
}

func (r *RegistrationRepository) FindBySessionEmailAndName(ctx context.Context, sessionID uint, email, playerName string) (domain.Registration, error) {
	found, err := r.dao.FindBySessionEmailAndName(ctx, sessionID, email, playerName)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindBySessionEmailAndName -> %w", err)
	}

	return registrationDAOToDomain(found), nil
}

func (r *RegistrationRepository) ListBySession(ctx context.Context, sessionID uint) ([]domain.Registration, error) {
	found, err := r.dao.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListBySession -> %w", err)
	}

	return registrationDAOsToDomain(found), nil
}

func registrationDomainToDAO(reg domain.Registration) dao.Registration {
	return dao.Registration{
		ID:                reg.ID,
		SessionID:         reg.SessionID,
		PlayerName:        reg.PlayerName,
		PlayerAge:         reg.PlayerAge,
		ExperienceLevel:   reg.ExperienceLevel,
		ParentName:        reg.ParentName,
		ParentEmail:       reg.ParentEmail,
		ParentPhone:       reg.ParentPhone,
		EmergencyContact:  reg.EmergencyContact,
		EmergencyPhone:    reg.EmergencyPhone,
		MedicalNotes:      reg.MedicalNotes,
		CancellationToken: reg.CancellationToken,
		TokenExpiresAt:    reg.TokenExpiresAt,
	}
}

func registrationDAOToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:                reg.ID,
		SessionID:         reg.SessionID,
		PlayerName:        reg.PlayerName,
		PlayerAge:         reg.PlayerAge,
		ExperienceLevel:   reg.ExperienceLevel,
		ParentName:        reg.ParentName,
		ParentEmail:       reg.ParentEmail,
		ParentPhone:       reg.ParentPhone,
		EmergencyContact:  reg.EmergencyContact,
		EmergencyPhone:    reg.EmergencyPhone,
		MedicalNotes:      reg.MedicalNotes,
		CancellationToken: reg.CancellationToken,
		TokenExpiresAt:    reg.TokenExpiresAt,
		CreatedAt:         reg.CreatedAt,
		UpdatedAt:         reg.UpdatedAt,
	}
}

func registrationDAOsToDomain(regs []dao.Registration) []domain.Registration {
	out := make([]domain.Registration, len(regs))
	for i, reg := range regs {
		out[i] = registrationDAOToDomain(reg)
	}

	return out
}
