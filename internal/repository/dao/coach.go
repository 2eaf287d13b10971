package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCoachNotFound = errors.New("coach not found")

type Coach struct {
	ID uint `gorm:"primaryKey"`

	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`

	Profile CoachProfile `gorm:"foreignKey:CoachID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CoachProfile struct {
	ID      uint `gorm:"primaryKey"`
	CoachID uint `gorm:"not null;index"`

	DisplayName  string `gorm:"not null"`
	Bio          string
	ContactPhone string
}

type CoachDAO struct {
	db *gorm.DB
}

func NewCoachDAO(db *gorm.DB) *CoachDAO {
	return &CoachDAO{
		db: db,
	}
}

// FindFirst returns the single coach row. The site is owned by one coach;
// there is no multi-tenant lookup.
func (d *CoachDAO) FindFirst(ctx context.Context) (Coach, error) {
	var coach Coach

	result := d.db.WithContext(ctx).Preload("Profile").First(&coach)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Coach{}, ErrCoachNotFound
		}

		return Coach{}, result.Error
	}

	return coach, nil
}

func (d *CoachDAO) UpdateProfile(ctx context.Context, coachID uint, profile CoachProfile) (CoachProfile, error) {
	result := d.db.WithContext(ctx).
		Model(&CoachProfile{}).
		Where("coach_id = ?", coachID).
		Updates(map[string]interface{}{
			"display_name":  profile.DisplayName,
			"bio":           profile.Bio,
			"contact_phone": profile.ContactPhone,
		})
	if result.Error != nil {
		return CoachProfile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CoachProfile{}, ErrCoachNotFound
	}

	var updated CoachProfile
	if err := d.db.WithContext(ctx).First(&updated, "coach_id = ?", coachID).Error; err != nil {
		return CoachProfile{}, err
	}

	return updated, nil
}

func (d *CoachDAO) UpdatePasswordHash(ctx context.Context, coachID uint, hash string) error {
	result := d.db.WithContext(ctx).
		Model(&Coach{}).
		Where("id = ?", coachID).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCoachNotFound
	}

	return nil
}
