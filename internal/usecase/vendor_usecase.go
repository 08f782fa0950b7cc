package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Location sources reported by ListVendorsWithLocation.
const (
	LocationSourceWhatsApp = "whatsapp"
	LocationSourceMapsLink = "mapsLink"
)

// VendorWithLocation is a vendor profile merged with its best known coordinate.
type VendorWithLocation struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ContactNumber  string    `json:"contactNumber"`
	MapsLink       string    `json:"mapsLink,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	LocationSource string    `json:"locationSource,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// VendorUsecase defines vendor-facing operations triggered by the admin
// dashboard and the public map.
type VendorUsecase interface {
	// SendPhotoUploadInvitation locates the vendor by any known phone format
	// and sends the photo upload template, falling back to a plain text
	// message when the template send fails.
	SendPhotoUploadInvitation(ctx context.Context, phoneNumber string) error

	// ListVendorsWithLocation returns vendor profiles merged with the
	// locations reported over WhatsApp, falling back to coordinates parsed
	// from each vendor's stored maps link.
	ListVendorsWithLocation(ctx context.Context) ([]*VendorWithLocation, error)
}
