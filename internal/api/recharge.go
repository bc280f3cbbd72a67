package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"recharge_system/internal/apperr"  // Error taxonomy
	"recharge_system/internal/metrics" // Prometheus counters
	"recharge_system/internal/service" // Business logic
	"recharge_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RechargeRequest represents a recharge submission
type RechargeRequest struct {
	UserID   uint    `json:"userId" binding:"required"`   // Recharging user
	UserName string  `json:"userName"`                    // Display name snapshot
	Mobile   string  `json:"mobile" binding:"required"`   // Mobile number snapshot
	PlanName string  `json:"planName" binding:"required"` // Plan to apply
	Amount   float64 `json:"amount"`                      // Amount paid; zero means free subscription
}

// PerformRechargeHandler records a recharge and updates the subscriber row.
// Every failure on this endpoint is a 400, including an unknown plan.
func PerformRechargeHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RechargeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.RechargeFailuresTotal.Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId, mobile, and planName are required"})
			return
		}
		recharge, err := service.PerformRecharge(db, service.RechargeRequest{
			UserID:   req.UserID,
			UserName: req.UserName,
			Mobile:   req.Mobile,
			PlanName: req.PlanName,
			Amount:   req.Amount,
		})
		if err != nil {
			metrics.RechargeFailuresTotal.Inc()
			// Plan lookup misses are client errors here, not 404s
			if apperr.KindOf(err) == apperr.KindNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			writeError(c, err)
			return
		}
		metrics.RechargesTotal.WithLabelValues(recharge.Status).Inc()
		// Invalidate projections derived from recharge data
		_ = utils.DeleteCache(context.Background(), rdb,
			"subscribers:all", "stats:total-subscribers", "stats:monthly-revenue")
		c.JSON(http.StatusOK, recharge) // Return the persisted transaction
	}
}

// ListRechargesHandler returns the full recharge history
func ListRechargesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := service.ListRecharges(db)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// ListRechargesByUserHandler returns one user's recharge history. The path
// parameter is a user id, not a history record id.
func ListRechargesByUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "userId")
		if !ok {
			return
		}
		history, err := service.ListRechargesByUser(db, userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}
