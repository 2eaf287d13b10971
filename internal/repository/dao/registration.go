package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrSessionFull           = errors.New("session is full")
	ErrDuplicateRegistration = errors.New("player already registered for this session")
	ErrTokenCollision        = errors.New("cancellation token collision")
)

type Registration struct {
	ID        uint `gorm:"primaryKey"`
	SessionID uint `gorm:"not null;index"`

	PlayerName      string `gorm:"not null"`
	PlayerAge       int    `gorm:"not null"`
	ExperienceLevel string

	ParentName  string `gorm:"not null"`
	ParentEmail string `gorm:"not null"`
	ParentPhone string `gorm:"not null"`

	EmergencyContact string
	EmergencyPhone   string
	MedicalNotes     string

	CancellationToken string    `gorm:"unique;not null"`
	TokenExpiresAt    time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// InsertWithCount runs the whole signup as one transaction: re-read the
// session, re-check duplicates and capacity against the live rows, insert
// the registration and bump the cached counter. Either all of it lands or
// none of it does. The capacity/duplicate reads rely on the transaction's
// isolation level; no explicit row lock is taken.
func (d *RegistrationDAO) InsertWithCount(ctx context.Context, registration Registration) (Registration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session Session
		if err := tx.Where("is_visible = ?", true).First(&session, registration.SessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}

			return err
		}

		// The duplicate check runs before the capacity check so an
		// already-registered player gets the conflict answer even when
		// the session has since filled.
		var duplicates int64
		if err := tx.Model(&Registration{}).
			Where("session_id = ? AND LOWER(player_name) = LOWER(?) AND LOWER(parent_email) = LOWER(?)",
				registration.SessionID, registration.PlayerName, registration.ParentEmail).
			Count(&duplicates).Error; err != nil {
			return err
		}
		if duplicates > 0 {
			return ErrDuplicateRegistration
		}

		var count int64
		if err := tx.Model(&Registration{}).
			Where("session_id = ?", registration.SessionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(session.MaxParticipants) {
			return ErrSessionFull
		}

		if err := tx.Create(&registration).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) &&
				pgErr.Code == pgerrcode.UniqueViolation &&
				strings.Contains(pgErr.Message, "cancellation_token") {
				return ErrTokenCollision
			}

			return err
		}

		return tx.Model(&Session{}).
			Where("id = ?", registration.SessionID).
			Update("current_participants", gorm.Expr("current_participants + 1")).Error
	})
	if err != nil {
		return Registration{}, err
	}

	return registration, nil
}

// DeleteWithCount removes the registration and decrements the owning
// session's counter in the same transaction. The counter never drops
// below zero.
func (d *RegistrationDAO) DeleteWithCount(ctx context.Context, id, sessionID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND session_id = ?", id, sessionID).Delete(&Registration{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRegistrationNotFound
		}

		return tx.Model(&Session{}).
			Where("id = ?", sessionID).
			Update("current_participants", gorm.Expr("GREATEST(current_participants - 1, 0)")).Error
	})
}

func (d *RegistrationDAO) FindByID(ctx context.Context, id uint) (Registration, error) {
	var registration Registration

	result := d.db.WithContext(ctx).First(&registration, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) FindByToken(ctx context.Context, token string) (Registration, error) {
	var registration Registration

	result := d.db.WithContext(ctx).First(&registration, "cancellation_token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

// FindBySessionEmailAndName matches case-insensitively. Player names are
// also matched with a single trailing space because old imports stored
// some names that way.
func (d *RegistrationDAO) FindBySessionEmailAndName(ctx context.Context, sessionID uint, email, playerName string) (Registration, error) {
	var registration Registration

	result := d.db.WithContext(ctx).
		Where("session_id = ? AND LOWER(parent_email) = LOWER(?) AND LOWER(player_name) IN (LOWER(?), LOWER(?))",
			sessionID, email, playerName, playerName+" ").
		First(&registration)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}

		return Registration{}, result.Error
	}

	return registration, nil
}

func (d *RegistrationDAO) ListBySession(ctx context.Context, sessionID uint) ([]Registration, error) {
	var registrations []Registration

	result := d.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}

	return registrations, nil
}
