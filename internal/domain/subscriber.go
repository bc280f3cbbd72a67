package domain

import "time"

// Subscriber statuses
const (
	StatusActive   = "Active"   // Subscription window open
	StatusInactive = "Inactive" // Subscription lapsed
)

// Subscriber Model — current-service projection for a user, overwritten by
// each recharge. The uniqueIndex keeps concurrent first recharges from
// producing two rows for one user.
type Subscriber struct {
	ID         uint      `gorm:"primaryKey" json:"id"`      // Primary key
	UserID     uint      `gorm:"uniqueIndex" json:"userId"` // One row per user
	Name       string    `json:"name"`                      // Display name from the latest recharge
	Mobile     string    `json:"mobile"`                    // Mobile number from the latest recharge
	Plan       string    `json:"plan"`                      // Current plan name snapshot
	ExpiryDate time.Time `json:"expiryDate"`                // When the current plan lapses
	Status     string    `json:"status"`                    // Active or Inactive
}
