package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"recharge_system/internal/service" // Business logic
	"recharge_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// MonthlyRevenueHandler returns the previous calendar month's revenue
func MonthlyRevenueHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var revenue float64
		if found, err := utils.GetCache(ctx, rdb, "stats:monthly-revenue", &revenue); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"revenue": revenue})
			return
		}
		revenue, err := service.MonthlyRevenue(db)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, "stats:monthly-revenue", revenue, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"revenue": revenue})
	}
}

// TotalSubscribersHandler returns the subscriber count
func TotalSubscribersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var total int64
		if found, err := utils.GetCache(ctx, rdb, "stats:total-subscribers", &total); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"total": total})
			return
		}
		total, err := service.CountSubscribers(db)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, "stats:total-subscribers", total, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"total": total})
	}
}

// ActivePlansHandler returns the count of active catalog plans
func ActivePlansHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var count int64
		if found, err := utils.GetCache(ctx, rdb, "stats:active-plans", &count); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"count": count})
			return
		}
		count, err := service.CountActivePlans(db)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, "stats:active-plans", count, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
