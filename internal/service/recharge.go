package service

import (
	"errors"
	"time"

	"recharge_system/internal/apperr"
	"recharge_system/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RechargeRequest carries one recharge submission. UserName is taken at face
// value for the history snapshot, not re-derived from the User row.
type RechargeRequest struct {
	UserID   uint
	UserName string
	Mobile   string
	PlanName string
	Amount   float64
}

// PerformRecharge validates the request, resolves the named plan, records the
// transaction and overwrites the user's subscriber row. The history insert and
// the subscriber upsert run in one database transaction: either both writes
// land or neither does.
func PerformRecharge(db *gorm.DB, req RechargeRequest) (*domain.RechargeHistory, error) {
	if req.UserID == 0 || req.Mobile == "" || req.PlanName == "" {
		return nil, apperr.Validationf("user id, mobile, and plan name are required")
	}

	var plan domain.Plan
	if err := db.Where("name = ?", req.PlanName).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Plan not found: %s", req.PlanName)
		}
		return nil, err
	}

	// Server clock, never client-supplied: prevents backdating.
	now := time.Now()
	status := domain.StatusSuccessful
	if req.Amount == 0 {
		status = domain.StatusFreeSubscription
	}

	recharge := domain.RechargeHistory{
		UserID:   req.UserID,
		UserName: req.UserName,
		Mobile:   req.Mobile,
		PlanName: req.PlanName,
		Amount:   req.Amount,
		Date:     now,
		Status:   status,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recharge).Error; err != nil {
			return err
		}
		days, err := ParseValidityDays(plan.Validity)
		if err != nil {
			return err // Rolls back the history insert
		}
		var subscriber domain.Subscriber
		if err := tx.Where("user_id = ?", req.UserID).First(&subscriber).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// No row yet; Save below inserts one.
		}
		subscriber.UserID = req.UserID
		subscriber.Name = req.UserName
		subscriber.Mobile = req.Mobile
		subscriber.Plan = req.PlanName
		// No clamping: a degenerate "0 days" validity yields an already
		// expired window with status still Active.
		subscriber.ExpiryDate = now.AddDate(0, 0, days)
		subscriber.Status = domain.StatusActive
		return tx.Save(&subscriber).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":   req.UserID,
			"plan_name": req.PlanName,
			"error":     err.Error(),
		}).Error("Recharge failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   req.UserID,
		"plan_name": req.PlanName,
		"amount":    req.Amount,
		"status":    status,
		"timestamp": now.Format(time.RFC3339),
	}).Info("Recharge recorded")
	return &recharge, nil
}

// ListRecharges returns the full recharge history, newest first.
func ListRecharges(db *gorm.DB) ([]domain.RechargeHistory, error) {
	var history []domain.RechargeHistory
	err := db.Order("date desc").Find(&history).Error
	return history, err
}

// ListRechargesByUser returns one user's recharge history, newest first.
func ListRechargesByUser(db *gorm.DB, userID uint) ([]domain.RechargeHistory, error) {
	var history []domain.RechargeHistory
	err := db.Where("user_id = ?", userID).Order("date desc").Find(&history).Error
	return history, err
}

// MonthlyRevenue sums the previous calendar month's successful recharges.
// Free subscriptions carry no revenue and are excluded.
func MonthlyRevenue(db *gorm.DB) (float64, error) {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, -1, 0)
	var revenue float64
	err := db.Model(&domain.RechargeHistory{}).
		Where("date >= ? AND date < ? AND status = ?", start, end, domain.StatusSuccessful).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}
