package domain

import "time"

// Recharge statuses
const (
	StatusSuccessful       = "Successful"        // Paid recharge
	StatusFreeSubscription = "Free Subscription" // Zero-amount recharge
)

// RechargeHistory Model — append-only transaction record. The plan name is
// denormalized on purpose: a later plan rename must not alter past records.
type RechargeHistory struct {
	ID       uint      `gorm:"primaryKey" json:"id"` // Primary key
	UserID   uint      `json:"userId"`               // Recharging user
	UserName string    `json:"userName"`             // Display name, as submitted
	Mobile   string    `json:"mobile"`               // Mobile number, as submitted
	PlanName string    `json:"planName"`             // Plan name snapshot, not a foreign key
	Amount   float64   `json:"amount"`               // Amount paid
	Date     time.Time `json:"date"`                 // Server-side transaction timestamp
	Status   string    `json:"status"`               // Successful or Free Subscription
}
