package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"recharge_system/internal/apperr"  // Error taxonomy
	"recharge_system/internal/domain"  // Importing domain models
	"recharge_system/internal/service" // Business logic
	"recharge_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// ListSubscribersHandler returns every subscriber row
func ListSubscribersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var subscribers []domain.Subscriber
		// Try the cache first
		if found, err := utils.GetCache(ctx, rdb, "subscribers:all", &subscribers); err == nil && found {
			c.JSON(http.StatusOK, subscribers)
			return
		}
		subscribers, err := service.ListSubscribers(db)
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, "subscribers:all", subscribers, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, subscribers)
	}
}

// ListExpiringSubscribersHandler returns active subscribers expiring within
// ?days=N (default 3). The expiring window moves with the clock, so this
// listing is never cached.
func ListExpiringSubscribersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		days := 3 // Default lookahead window
		if d := c.Query("days"); d != "" {
			if v, err := strconv.Atoi(d); err == nil && v > 0 {
				days = v // Set window if valid
			}
		}
		subscribers, err := service.ListExpiringSubscribers(db, days)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, subscribers)
	}
}

// GetSubscriberByUserHandler returns the subscriber row for a user id, or
// 204 when the user has never recharged
func GetSubscriberByUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "userId")
		if !ok {
			return
		}
		subscriber, err := service.GetSubscriberByUser(db, userID)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				c.Status(http.StatusNoContent) // No recharge yet
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, subscriber)
	}
}
