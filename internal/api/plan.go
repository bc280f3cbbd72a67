package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Time durations

	"recharge_system/internal/domain"  // Importing domain models
	"recharge_system/internal/service" // Business logic
	"recharge_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// planCacheKey builds the cache key for a catalog listing
func planCacheKey(category string) string {
	if category == "" {
		return "plans:all"
	}
	return "plans:category:" + category
}

// invalidatePlanCaches clears catalog listings touching the given categories
func invalidatePlanCaches(rdb *redis.Client, categories ...string) {
	keys := []string{"plans:all", "stats:active-plans"}
	for _, category := range categories {
		if category != "" {
			keys = append(keys, planCacheKey(category))
		}
	}
	_ = utils.DeleteCache(context.Background(), rdb, keys...)
}

// ListPlansHandler returns the catalog, optionally filtered by category.
// "all" (any case) or no filter returns everything.
func ListPlansHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if strings.EqualFold(category, "all") {
			category = "" // Treat "all" as no filter
		}
		ctx := context.Background()
		cacheKey := planCacheKey(category)
		var plans []domain.Plan
		// Try the cache first
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &plans); err == nil && found {
			c.JSON(http.StatusOK, plans)
			return
		}
		var err error
		if category == "" {
			plans, err = service.ListPlans(db)
		} else {
			plans, err = service.ListPlansByCategory(db, category)
		}
		if err != nil {
			writeError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, plans, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, plans)
	}
}

// GetPlanHandler returns one plan by id
func GetPlanHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		plan, err := service.GetPlan(db, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

// CreatePlanHandler stores a new plan
func CreatePlanHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plan domain.Plan // Bind JSON request to the model
		if err := c.ShouldBindJSON(&plan); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		plan.ID = 0 // Ignore any client-supplied id
		if err := service.CreatePlan(db, &plan); err != nil {
			writeError(c, err)
			return
		}
		invalidatePlanCaches(rdb, plan.Category)
		c.JSON(http.StatusOK, plan)
	}
}

// UpdatePlanHandler replaces a plan's fields; the active flag only changes
// when supplied
func UpdatePlanHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var in domain.Plan // Bind JSON request to the model
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Fetch first so the listing for the old category is invalidated too
		existing, err := service.GetPlan(db, id)
		if err != nil {
			writeError(c, err)
			return
		}
		oldCategory := existing.Category
		plan, err := service.UpdatePlan(db, id, &in)
		if err != nil {
			writeError(c, err)
			return
		}
		invalidatePlanCaches(rdb, oldCategory, plan.Category)
		c.JSON(http.StatusOK, plan)
	}
}

// DeletePlanHandler removes a plan by id
func DeletePlanHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var oldCategory string
		if plan, err := service.GetPlan(db, id); err == nil {
			oldCategory = plan.Category
		}
		if err := service.DeletePlan(db, id); err != nil {
			writeError(c, err)
			return
		}
		invalidatePlanCaches(rdb, oldCategory)
		c.Status(http.StatusNoContent)
	}
}
