package repository

import (
	"context"
	"fmt"

	"github.com/courtside/trainings-api/internal/domain"
	"github.com/courtside/trainings-api/internal/repository/dao"
)

var ErrLocationNotFound = dao.ErrLocationNotFound

type LocationDAO interface {
	Upsert(ctx context.Context, name, address string) error
	List(ctx context.Context) ([]dao.Location, error)
	Delete(ctx context.Context, id uint) error
}

type LocationRepository struct {
	dao LocationDAO
}

func NewLocationRepository(dao LocationDAO) *LocationRepository {
	return &LocationRepository{
		dao: dao,
	}
}

func (r *LocationRepository) Remember(ctx context.Context, name, address string) error {
	if err := r.dao.Upsert(ctx, name, address); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	locations := make([]domain.Location, len(found))
	for i, l := range found {
		locations[i] = domain.Location{
			ID:       l.ID,
			Name:     l.Name,
			Address:  l.Address,
			LastUsed: l.LastUsed,
		}
	}

	return locations, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
