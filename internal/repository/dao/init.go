package dao

import (
	"errors"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Coach{},
		&CoachProfile{},
		&Session{},
		&Registration{},
		&Location{},
	)
}

// SeedCoach inserts the single admin identity when the table is empty.
// The bcrypt hash comes from config so no plaintext ever touches the DB.
func SeedCoach(db *gorm.DB, passwordHash string) error {
	var coach Coach

	err := db.First(&coach).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	coach = Coach{
		Email:        "coach@courtside-trainings.example",
		PasswordHash: passwordHash,
		Profile: CoachProfile{
			DisplayName: "Coach",
		},
	}

	return db.Create(&coach).Error
}
