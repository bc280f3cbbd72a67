package domain

// User roles
const (
	RoleUser  = "user"  // Regular subscriber account
	RoleAdmin = "admin" // Portal administrator
)

// User Model
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`                // Primary key
	Name         string `gorm:"not null" json:"name"`                // Display name (sanitized at registration)
	MobileNumber string `gorm:"unique;not null" json:"mobileNumber"` // Unique 10-digit mobile number
	Email        string `gorm:"unique;not null" json:"email"`        // Unique email address
	Password     string `gorm:"not null" json:"-"`                   // Hashed password, never serialized
	Role         string `gorm:"default:user" json:"role"`            // Role: user or admin
}
