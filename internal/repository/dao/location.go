package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrLocationNotFound = errors.New("location not found")

type Location struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"not null"`
	Address  string    `gorm:"unique;not null"`
	LastUsed time.Time `gorm:"not null"`
}

type LocationDAO struct {
	db *gorm.DB
}

func NewLocationDAO(db *gorm.DB) *LocationDAO {
	return &LocationDAO{
		db: db,
	}
}

// Upsert keys on the address string. A known address gets its name and
// last-used timestamp refreshed, a new one gets a row.
func (d *LocationDAO) Upsert(ctx context.Context, name, address string) error {
	location := Location{
		Name:     name,
		Address:  address,
		LastUsed: time.Now().UTC(),
	}

	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "last_used"}),
		}).
		Create(&location).Error
}

func (d *LocationDAO) List(ctx context.Context) ([]Location, error) {
	var locations []Location

	result := d.db.WithContext(ctx).Order("last_used DESC").Find(&locations)
	if result.Error != nil {
		return nil, result.Error
	}

	return locations, nil
}

func (d *LocationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Location{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}

	return nil
}
