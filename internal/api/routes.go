package api

import (
	"recharge_system/internal/metrics" // Prometheus handler

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// RegisterRoutes mounts the full HTTP surface on the router
func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	root := r.Group("/api")

	// Auth routes
	auth := root.Group("/auth")
	auth.POST("/register", RegisterHandler(db))                  // Registration endpoint
	auth.POST("/login", LoginHandler(db))                        // Login endpoint
	auth.POST("/forgot-password/get-email", GetEmailHandler(db)) // Email lookup for reset flow
	auth.POST("/forgot-password", ResetPasswordHandler(db))      // Password reset endpoint

	// Plan catalog routes
	root.GET("/plans", ListPlansHandler(db, rdb))         // Catalog listing, optional ?category=
	root.GET("/plans/:id", GetPlanHandler(db))            // Single plan lookup
	root.POST("/plans", CreatePlanHandler(db, rdb))       // Plan creation
	root.PUT("/plans/:id", UpdatePlanHandler(db, rdb))    // Plan update
	root.DELETE("/plans/:id", DeletePlanHandler(db, rdb)) // Plan deletion

	// Recharge routes
	root.POST("/recharge", PerformRechargeHandler(db, rdb))               // Recharge endpoint
	root.GET("/recharge-history", ListRechargesHandler(db))               // Full history
	root.GET("/recharge-history/:userId", ListRechargesByUserHandler(db)) // Per-user history

	// Subscriber routes
	root.GET("/subscribers", ListSubscribersHandler(db, rdb))             // All subscribers
	root.GET("/subscribers/expiring", ListExpiringSubscribersHandler(db)) // Expiring within ?days=N
	root.GET("/subscribers/user/:userId", GetSubscriberByUserHandler(db)) // Per-user lookup

	// Stats routes
	stats := root.Group("/stats")
	stats.GET("/monthly-revenue", MonthlyRevenueHandler(db, rdb))     // Previous month's revenue
	stats.GET("/total-subscribers", TotalSubscribersHandler(db, rdb)) // Subscriber count
	stats.GET("/active-plans", ActivePlansHandler(db, rdb))           // Active plan count

	r.GET("/metrics", metrics.Handler()) // Prometheus metrics
}
