package service

import (
	"errors"
	"time"

	"recharge_system/internal/apperr"
	"recharge_system/internal/domain"

	"gorm.io/gorm"
)

// The registry is read-only: subscriber rows are written exclusively by
// PerformRecharge.

// ListSubscribers returns every subscriber row.
func ListSubscribers(db *gorm.DB) ([]domain.Subscriber, error) {
	var subscribers []domain.Subscriber
	err := db.Find(&subscribers).Error
	return subscribers, err
}

// ListExpiringSubscribers returns active subscribers whose plan lapses within
// the given number of days.
func ListExpiringSubscribers(db *gorm.DB, days int) ([]domain.Subscriber, error) {
	cutoff := time.Now().AddDate(0, 0, days)
	var subscribers []domain.Subscriber
	err := db.Where("expiry_date <= ? AND status = ?", cutoff, domain.StatusActive).
		Find(&subscribers).Error
	return subscribers, err
}

// GetSubscriberByUser looks up the subscriber row for a user id.
func GetSubscriberByUser(db *gorm.DB, userID uint) (*domain.Subscriber, error) {
	var subscriber domain.Subscriber
	if err := db.Where("user_id = ?", userID).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Subscriber not found")
		}
		return nil, err
	}
	return &subscriber, nil
}

// CountSubscribers counts all subscriber rows.
func CountSubscribers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&domain.Subscriber{}).Count(&count).Error
	return count, err
}
