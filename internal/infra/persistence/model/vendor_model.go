package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel is the GORM-specific struct for the 'vendors' table. The table
// is owned by the main platform backend; this service only reads it, so no
// migration is run for it here.
type VendorModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string    `gorm:"type:varchar(255);not null;index"`
	ContactNumber string    `gorm:"type:varchar(30);not null;index"`
	MapsLink      string    `gorm:"type:text"`
	Latitude      *float64  `gorm:"type:decimal(10,8)"`
	Longitude     *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
