package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a street-food vendor's profile as registered on the platform.
// ContactNumber is stored in whatever format the vendor typed at registration
// ("+91...", bare 10 digits, spaces); reconciliation against the canonical
// WhatsApp MSISDN always goes through phone.CandidateVariants.
type Vendor struct {
	ID            uuid.UUID
	Name          string
	ContactNumber string
	MapsLink      string // Maps share link from registration; coordinate fallback when no WhatsApp report exists.
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
