package domain

// Plan Model
type Plan struct {
	ID       uint     `gorm:"primaryKey" json:"id"`            // Primary key
	Name     string   `json:"name"`                            // Plan name, referenced by recharges
	Price    int      `json:"price"`                           // Price in whole currency units
	Validity string   `json:"validity"`                        // Duration string, leading integer is the day count (e.g. "30 days")
	Data     string   `json:"data"`                            // Data allowance descriptor
	Calls    string   `json:"calls"`                           // Calls allowance descriptor
	SMS      string   `json:"sms"`                             // SMS allowance descriptor
	Category string   `json:"category"`                        // Catalog category
	Benefits []string `gorm:"serializer:json" json:"benefits"` // Benefit strings, stored as JSON
	Active   *bool    `gorm:"column:is_active" json:"active"`  // Active flag; pointer so omitted != false
}

// IsActive reports the active flag, treating an unset flag as active.
func (p *Plan) IsActive() bool {
	return p.Active == nil || *p.Active
}
