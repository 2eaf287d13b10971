package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type Session struct {
	ID uint `gorm:"primaryKey"`

	Sport     string    `gorm:"not null;index"` // "volleyball" or "basketball"
	AgeGroup  string    `gorm:"not null"`
	Date      time.Time `gorm:"not null;index"`
	TimeRange string    `gorm:"not null"` // "6:00 PM - 7:30 PM"

	Location string `gorm:"not null"`
	Address  string `gorm:"not null"`

	MaxParticipants     int     `gorm:"not null"`
	CurrentParticipants int     `gorm:"not null;default:0"`
	Price               float64 `gorm:"not null;default:0"`
	Focus               string
	IsVisible           bool `gorm:"not null;default:true"`

	Registrations []Registration `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{
		db: db,
	}
}

func (d *SessionDAO) Insert(ctx context.Context, session Session) (Session, error) {
	result := d.db.WithContext(ctx).Create(&session)
	if result.Error != nil {
		return Session{}, result.Error
	}

	return session, nil
}

func (d *SessionDAO) FindByID(ctx context.Context, id uint) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).Preload("Registrations").First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

func (d *SessionDAO) FindVisibleByID(ctx context.Context, id uint) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).
		Preload("Registrations").
		Where("is_visible = ?", true).
		First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

func (d *SessionDAO) ListVisible(ctx context.Context) ([]Session, error) {
	var sessions []Session

	result := d.db.WithContext(ctx).
		Preload("Registrations").
		Where("is_visible = ?", true).
		Order("date ASC").
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

func (d *SessionDAO) ListAll(ctx context.Context) ([]Session, error) {
	var sessions []Session

	result := d.db.WithContext(ctx).
		Preload("Registrations").
		Order("date DESC").
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

// ListVisibleByDateWindow returns visible sessions with from <= date < to.
// Used by the reminder cron for the next-day window.
func (d *SessionDAO) ListVisibleByDateWindow(ctx context.Context, from, to time.Time) ([]Session, error) {
	var sessions []Session

	result := d.db.WithContext(ctx).
		Preload("Registrations").
		Where("is_visible = ? AND date >= ? AND date < ?", true, from, to).
		Order("date ASC").
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

func (d *SessionDAO) Update(ctx context.Context, session Session) (Session, error) {
	result := d.db.WithContext(ctx).
		Model(&Session{ID: session.ID}).
		Select("Sport", "AgeGroup", "Date", "TimeRange", "Location", "Address",
			"MaxParticipants", "Price", "Focus", "IsVisible").
		Updates(session)
	if result.Error != nil {
		return Session{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Session{}, ErrSessionNotFound
	}

	return d.FindByID(ctx, session.ID)
}

func (d *SessionDAO) SetVisibility(ctx context.Context, id uint, visible bool) error {
	result := d.db.WithContext(ctx).
		Model(&Session{}).
		Where("id = ?", id).
		Update("is_visible", visible)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete removes a session; registrations go with it via the cascade.
func (d *SessionDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Session{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ArchiveBefore hides every visible session dated before cutoff and
// returns how many rows flipped.
func (d *SessionDAO) ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&Session{}).
		Where("is_visible = ? AND date < ?", true, cutoff).
		Update("is_visible", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
