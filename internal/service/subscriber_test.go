package service

import (
	"testing"
	"time"

	"recharge_system/internal/apperr"
	"recharge_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSubscriber(t *testing.T, db *gorm.DB, sub domain.Subscriber) {
	t.Helper()
	require.NoError(t, db.Create(&sub).Error)
}

func TestListExpiringSubscribers(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	seedSubscriber(t, db, domain.Subscriber{
		UserID: 1, Name: "Soon", Plan: "A",
		ExpiryDate: now.AddDate(0, 0, 2), Status: domain.StatusActive,
	})
	seedSubscriber(t, db, domain.Subscriber{
		UserID: 2, Name: "Later", Plan: "A",
		ExpiryDate: now.AddDate(0, 0, 20), Status: domain.StatusActive,
	})
	seedSubscriber(t, db, domain.Subscriber{
		UserID: 3, Name: "Lapsed", Plan: "A",
		ExpiryDate: now.AddDate(0, 0, 1), Status: domain.StatusInactive,
	})

	expiring, err := ListExpiringSubscribers(db, 3)
	require.NoError(t, err)
	// Only active subscribers inside the window; inactive ones are excluded
	// even when already past expiry.
	require.Len(t, expiring, 1)
	assert.Equal(t, "Soon", expiring[0].Name)

	wide, err := ListExpiringSubscribers(db, 30)
	require.NoError(t, err)
	assert.Len(t, wide, 2)
}

func TestGetSubscriberByUser_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := GetSubscriberByUser(db, 404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCountSubscribers(t *testing.T) {
	db := newTestDB(t)
	seedSubscriber(t, db, domain.Subscriber{UserID: 1, Status: domain.StatusActive})
	seedSubscriber(t, db, domain.Subscriber{UserID: 2, Status: domain.StatusInactive})

	count, err := CountSubscribers(db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
