package api

import (
	"net/http" // HTTP status codes

	"recharge_system/internal/service" // Business logic

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RegisterRequest represents a registration submission
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`         // Display name
	MobileNumber string `json:"mobileNumber" binding:"required"` // 10-digit mobile number
	Email        string `json:"email" binding:"required"`        // Email address
	Password     string `json:"password" binding:"required"`     // Plaintext password, hashed before storage
}

// LoginRequest represents a login submission
type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"` // Mobile number
	Password     string `json:"password" binding:"required"`     // Password
}

// MobileNumberRequest carries just a mobile number
type MobileNumberRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"` // Mobile number
}

// ResetPasswordRequest carries a forgot-password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`       // Account email
	NewPassword string `json:"newPassword" binding:"required"` // Replacement password
}

// RegisterHandler creates a new user account. The response is the stored
// user record; the password hash never serializes.
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := service.Register(db, service.RegisterRequest{
			Name:         req.Name,
			MobileNumber: req.MobileNumber,
			Email:        req.Email,
			Password:     req.Password,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// LoginHandler authenticates a user and returns the user record. No session
// token is issued; sessions are not modeled.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := service.Login(db, req.MobileNumber, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GetEmailHandler resolves the email behind a mobile number for the
// forgot-password flow
func GetEmailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MobileNumberRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
			return
		}
		if !service.IsValidMobileNumber(req.MobileNumber) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid mobile number format"})
			return
		}
		email, err := service.EmailByMobile(db, req.MobileNumber)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "email": email, "userName": "User"})
	}
}

// ResetPasswordHandler overwrites the password for an email's account
func ResetPasswordHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !service.IsValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
		if err := service.ResetPassword(db, req.Email, req.NewPassword); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
	}
}
