package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDAO_Update(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	d := NewSessionDAO(db)

	session := mustCreateSession(t, db, 12, true)

	session.TimeRange = "7:00 PM - 8:30 PM"
	session.Focus = "Blocking drills"
	updated, err := d.Update(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "7:00 PM - 8:30 PM", updated.TimeRange)
	assert.Equal(t, "Blocking drills", updated.Focus)

	missing := session
	missing.ID = 999999
	_, err = d.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionDAO_VisibilityFiltering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	d := NewSessionDAO(db)

	visible := mustCreateSession(t, db, 12, true)
	hidden := mustCreateSession(t, db, 12, false)

	_, err := d.FindVisibleByID(ctx, visible.ID)
	require.NoError(t, err)

	_, err = d.FindVisibleByID(ctx, hidden.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// FindByID is the admin view and sees everything.
	_, err = d.FindByID(ctx, hidden.ID)
	require.NoError(t, err)
}

func TestSessionDAO_ArchiveBefore(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	d := NewSessionDAO(db)

	past := mustCreateSession(t, db, 12, true)
	require.NoError(t, db.Model(&Session{}).Where("id = ?", past.ID).
		Update("date", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)).Error)
	future := mustCreateSession(t, db, 12, true)
	require.NoError(t, db.Model(&Session{}).Where("id = ?", future.ID).
		Update("date", time.Now().UTC().AddDate(0, 0, 7)).Error)

	archived, err := d.ArchiveBefore(ctx, time.Now().UTC().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, archived, int64(1))

	_, err = d.FindVisibleByID(ctx, past.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = d.FindVisibleByID(ctx, future.ID)
	require.NoError(t, err)
}

func TestSessionDAO_DeleteCascadesRegistrations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	d := NewSessionDAO(db)
	regs := NewRegistrationDAO(db)

	session := mustCreateSession(t, db, 12, true)
	created, err := regs.InsertWithCount(ctx, newTestRegistration(session.ID, "Emma Johnson", "sarah@example.com"))
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, session.ID))

	_, err = regs.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)

	assert.ErrorIs(t, d.Delete(ctx, session.ID), ErrSessionNotFound)
}

func TestLocationDAO_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	d := NewLocationDAO(db)

	require.NoError(t, d.Upsert(ctx, "Community Center", "742 Evergreen Terrace"))
	require.NoError(t, d.Upsert(ctx, "Community Center North", "742 Evergreen Terrace"))

	locations, err := d.List(ctx)
	require.NoError(t, err)

	var matches []Location
	for _, loc := range locations {
		if loc.Address == "742 Evergreen Terrace" {
			matches = append(matches, loc)
		}
	}
	require.Len(t, matches, 1, "address is the upsert key")
	assert.Equal(t, "Community Center North", matches[0].Name)

	require.NoError(t, d.Delete(ctx, matches[0].ID))
	assert.ErrorIs(t, d.Delete(ctx, matches[0].ID), ErrLocationNotFound)
}
