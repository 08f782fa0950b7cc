// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"khojo/internal/geo"
)

// VendorLocation is the latest GPS coordinate a vendor self-reported over
// WhatsApp. Phone is the canonical identifier: digits only, country code
// included ("919876543210"). One row per phone; every new report replaces the
// whole location block.
type VendorLocation struct {
	Phone         string       // Canonical digits-only MSISDN, unique key.
	ProfileName   string       // Display name from the sender's WhatsApp profile, if any.
	Location      geo.Location // Latest reported coordinate with optional place metadata.
	LastMessageID string       // Platform message id of the most recent update. Advisory only.
	LastMessageTs time.Time    // Platform timestamp of the most recent update, not processing time.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
