package postgres

import (
	"context"

	"khojo/internal/domain/entity"
	"khojo/internal/domain/repository"
	"khojo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultVendorListLimit = 100

// vendorRepository implements the repository.VendorRepository interface.
// Vendor rows are owned by the main platform backend; this repository only
// reads them.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// FindByContactVariants returns the first vendor whose stored contact number
// matches any of the given phone variants.
func (repo *vendorRepository) FindByContactVariants(ctx context.Context, variants []string) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("contact_number IN ?", variants).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by contact variants")
	}

	return toVendorDomain(&vendorM), nil
}

// FindAll retrieves vendor profiles, most recently updated first.
func (repo *vendorRepository) FindAll(ctx context.Context, limit int) ([]*entity.Vendor, error) {
	if limit <= 0 {
		limit = defaultVendorListLimit
	}

	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:            data.ID,
		Name:          data.Name,
		ContactNumber: data.ContactNumber,
		MapsLink:      data.MapsLink,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
