package repository

import (
	"context"

	"khojo/internal/domain/entity"
	"khojo/internal/errors"
)

// ErrVendorNotFound is returned when no vendor matches any phone variant.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository looks up vendor profiles. Read-only from this service's
// perspective; profile CRUD is owned by the main platform backend.
type VendorRepository interface {
	// FindByContactVariants returns the first vendor whose stored contact
	// number matches any of the given phone variants.
	// Returns ErrVendorNotFound when none match.
	FindByContactVariants(ctx context.Context, variants []string) (*entity.Vendor, error)

	// FindAll retrieves vendor profiles for the map-data merge, newest first.
	FindAll(ctx context.Context, limit int) ([]*entity.Vendor, error)
}
