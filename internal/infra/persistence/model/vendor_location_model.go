package model

import "time"

// VendorLocationModel is the GORM-specific struct for the 'vendor_locations'
// table. One row per WhatsApp sender phone; the location columns are replaced
// wholesale on every accepted update.
type VendorLocationModel struct {
	Phone           string `gorm:"type:varchar(20);primaryKey"`
	ProfileName     string `gorm:"type:varchar(255)"`
	Lat             float64 `gorm:"type:decimal(10,8);not null"`
	Lng             float64 `gorm:"type:decimal(11,8);not null"`
	LocationName    string  `gorm:"type:varchar(255)"`
	LocationAddress string  `gorm:"type:text"`
	LastMessageID   string  `gorm:"type:varchar(255);index"`
	LastMessageTs   time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorLocationModel) TableName() string {
	return "vendor_locations"
}
