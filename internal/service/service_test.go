package service

import (
	"fmt"
	"testing"

	"recharge_system/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Plan{}, &domain.Subscriber{}, &domain.RechargeHistory{},
	))
	return db
}

// mustCreatePlan stores a plan through the catalog service.
func mustCreatePlan(t *testing.T, db *gorm.DB, plan domain.Plan) domain.Plan {
	t.Helper()
	require.NoError(t, CreatePlan(db, &plan))
	return plan
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
