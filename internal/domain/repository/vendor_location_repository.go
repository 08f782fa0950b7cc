// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"khojo/internal/domain/entity"
	"khojo/internal/errors"
)

// ErrVendorLocationNotFound is returned when no location record exists for a phone.
var ErrVendorLocationNotFound = errors.New("vendor location not found")

// VendorLocationRepository persists the latest self-reported coordinate per
// vendor phone number.
type VendorLocationRepository interface {
	// Upsert inserts or fully replaces the record keyed by record.Phone.
	// The whole location block is overwritten, so a report carrying only
	// partial metadata blanks the rest; latest message wins entirely.
	// A record whose LastMessageTs is older than the stored one is dropped
	// so reordered deliveries cannot clobber a newer coordinate.
	Upsert(ctx context.Context, record *entity.VendorLocation) error

	// FindByPhone retrieves the record for a canonical digits-only phone.
	// Returns ErrVendorLocationNotFound if no report was ever received.
	FindByPhone(ctx context.Context, phone string) (*entity.VendorLocation, error)

	// FindAll retrieves every location record, for the map-data merge.
	FindAll(ctx context.Context) ([]*entity.VendorLocation, error)
}
