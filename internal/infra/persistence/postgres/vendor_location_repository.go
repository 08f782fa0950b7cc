// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"khojo/internal/domain/entity"
	domainerrors "khojo/internal/domain/errors"
	"khojo/internal/domain/repository"
	"khojo/internal/geo"
	"khojo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vendorLocationRepository implements the repository.VendorLocationRepository interface.
type vendorLocationRepository struct {
	db *gorm.DB
}

// NewVendorLocationRepository is the constructor for vendorLocationRepository.
func NewVendorLocationRepository(db *gorm.DB) repository.VendorLocationRepository {
	return &vendorLocationRepository{
		db: db,
	}
}

// Upsert inserts or fully replaces the record keyed by phone. The DO UPDATE
// only fires when the incoming platform timestamp is not older than the
// stored one, so a reordered redelivery cannot clobber a newer coordinate.
// Retries of the same message (equal timestamps) still overwrite.
func (repo *vendorLocationRepository) Upsert(ctx context.Context, record *entity.VendorLocation) error {
	locationM := fromVendorLocationDomain(record)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"profile_name",
				"lat",
				"lng",
				"location_name",
				"location_address",
				"last_message_id",
				"last_message_ts",
				"updated_at",
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "vendor_locations.last_message_ts <= excluded.last_message_ts"},
			}},
		}).
		Create(locationM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrLocationUpsertFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert vendor location")
	}

	record.CreatedAt = locationM.CreatedAt
	record.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByPhone retrieves the record for a canonical digits-only phone.
func (repo *vendorLocationRepository) FindByPhone(ctx context.Context, phone string) (*entity.VendorLocation, error) {
	var locationM model.VendorLocationModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor location by phone")
	}

	return toVendorLocationDomain(&locationM), nil
}

// FindAll retrieves every location record, most recently updated first.
func (repo *vendorLocationRepository) FindAll(ctx context.Context) ([]*entity.VendorLocation, error) {
	var locationModels []*model.VendorLocationModel

	if err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendor locations")
	}

	records := make([]*entity.VendorLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		records = append(records, toVendorLocationDomain(locationM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toVendorLocationDomain converts a GORM VendorLocationModel to a domain VendorLocation entity.
func toVendorLocationDomain(data *model.VendorLocationModel) *entity.VendorLocation {
	if data == nil {
		return nil
	}

	return &entity.VendorLocation{
		Phone:       data.Phone,
		ProfileName: data.ProfileName,
		Location: geo.Location{
			Lat:     data.Lat,
			Lng:     data.Lng,
			Name:    data.LocationName,
			Address: data.LocationAddress,
		},
		LastMessageID: data.LastMessageID,
		LastMessageTs: data.LastMessageTs,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromVendorLocationDomain converts a domain VendorLocation entity to a GORM VendorLocationModel.
func fromVendorLocationDomain(data *entity.VendorLocation) *model.VendorLocationModel {
	if data == nil {
		return nil
	}

	return &model.VendorLocationModel{
		Phone:           data.Phone,
		ProfileName:     data.ProfileName,
		Lat:             data.Location.Lat,
		Lng:             data.Location.Lng,
		LocationName:    data.Location.Name,
		LocationAddress: data.Location.Address,
		LastMessageID:   data.LastMessageID,
		LastMessageTs:   data.LastMessageTs,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
