package service

import (
	"errors"

	"recharge_system/internal/apperr"
	"recharge_system/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreatePlan stores a new plan. The active flag defaults to true when omitted
// and the validity string is checked up front so a malformed day count fails
// here instead of at recharge time.
func CreatePlan(db *gorm.DB, plan *domain.Plan) error {
	if _, err := ParseValidityDays(plan.Validity); err != nil {
		return err
	}
	if plan.Active == nil {
		active := true
		plan.Active = &active
	}
	if err := db.Create(plan).Error; err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"plan_id":   plan.ID,
		"plan_name": plan.Name,
	}).Info("Plan created")
	return nil
}

// ListPlans returns the full catalog.
func ListPlans(db *gorm.DB) ([]domain.Plan, error) {
	var plans []domain.Plan
	err := db.Find(&plans).Error
	return plans, err
}

// ListPlansByCategory returns plans matching the category exactly
// (case-sensitive).
func ListPlansByCategory(db *gorm.DB, category string) ([]domain.Plan, error) {
	if category == "" {
		return nil, apperr.Validationf("category cannot be empty")
	}
	var plans []domain.Plan
	err := db.Where("category = ?", category).Find(&plans).Error
	return plans, err
}

// GetPlan looks up one plan by id.
func GetPlan(db *gorm.DB, id uint) (*domain.Plan, error) {
	var plan domain.Plan
	if err := db.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Plan not found")
		}
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan replaces every field of an existing plan except the active flag,
// which keeps its stored value unless explicitly supplied. Omitting any other
// field in the request clears it — full-replace semantics.
func UpdatePlan(db *gorm.DB, id uint, in *domain.Plan) (*domain.Plan, error) {
	existing, err := GetPlan(db, id)
	if err != nil {
		return nil, err
	}
	if _, err := ParseValidityDays(in.Validity); err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.Price = in.Price
	existing.Validity = in.Validity
	existing.Data = in.Data
	existing.Calls = in.Calls
	existing.SMS = in.SMS
	existing.Category = in.Category
	existing.Benefits = in.Benefits
	if in.Active != nil {
		existing.Active = in.Active
	}
	if err := db.Save(existing).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"plan_id":   existing.ID,
		"plan_name": existing.Name,
	}).Info("Plan updated")
	return existing, nil
}

// DeletePlan removes a plan by id. Deleting an absent id is a no-op, matching
// the catalog's delete-by-key semantics.
func DeletePlan(db *gorm.DB, id uint) error {
	return db.Delete(&domain.Plan{}, id).Error
}

// CountActivePlans counts plans whose active flag is set.
func CountActivePlans(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&domain.Plan{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
