package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"khojo/config"
	"khojo/internal/domain/entity"
	domainerrors "khojo/internal/domain/errors"
	"khojo/internal/domain/repository"
	"khojo/internal/domain/service"
	"khojo/internal/geo"
	"khojo/internal/phone"
	"khojo/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultPhotoUploadTemplate = "photo_upload_invitation"
	defaultTemplateLanguage    = "en"
)

// vendorService implements the admin-triggered vendor operations.
type vendorService struct {
	vendorRepo   repository.VendorRepository
	locationRepo repository.VendorLocationRepository
	messenger    service.Messenger
	config       *config.Config
	logger       *slog.Logger
}

// NewVendorService creates the vendor use case instance.
func NewVendorService(
	vendorRepo repository.VendorRepository,
	locationRepo repository.VendorLocationRepository,
	messenger service.Messenger,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:   vendorRepo,
		locationRepo: locationRepo,
		messenger:    messenger,
		config:       cfg,
		logger:       logger,
	}
}

// SendPhotoUploadInvitation sends the photo upload template to the vendor
// registered under phoneNumber, in any of its stored formats.
func (s *vendorService) SendPhotoUploadInvitation(ctx context.Context, phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return domainerrors.ErrInvalidPhoneNumber
	}

	toMsisdn := phone.WithCountryCode(phone.DigitsOnly(phoneNumber))

	vendor, err := s.vendorRepo.FindByContactVariants(ctx, phone.CandidateVariants(phoneNumber))
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return err
	}

	templateName := defaultPhotoUploadTemplate
	if s.config.Messaging != nil && s.config.Messaging.Meta != nil && s.config.Messaging.Meta.PhotoUploadTemplate != "" {
		templateName = s.config.Messaging.Meta.PhotoUploadTemplate
	}

	// The template body embeds the upload link, parameterized on the MSISDN.
	components := []service.TemplateComponent{{
		Type: "body",
		Parameters: []service.TemplateParameter{{
			Type: "text",
			Text: toMsisdn,
		}},
	}}

	err = s.messenger.SendTemplate(ctx, toMsisdn, templateName, defaultTemplateLanguage, components)
	if err == nil {
		return nil
	}

	// Template sends fail outside approval or on the Twilio provider; fall
	// back to a plain text message carrying the same link.
	s.logger.Warn("Template send failed, falling back to text",
		slog.String("to", toMsisdn),
		slog.String("template", templateName),
		slog.String("error", err.Error()),
	)

	body := fmt.Sprintf("Hi %s! Upload your laari photos here: %s",
		vendorDisplayName(vendor), buildUploadURL(s.config, toMsisdn))
	if err := s.messenger.SendText(ctx, toMsisdn, body); err != nil {
		return domainerrors.ErrMessengerSendFailed.WrapMessage(err.Error())
	}

	return nil
}

// ListVendorsWithLocation merges vendor profiles with the freshest coordinate
// known for each: a WhatsApp-reported location wins, then a coordinate parsed
// from the stored maps link, then whatever the profile itself carries.
func (s *vendorService) ListVendorsWithLocation(ctx context.Context) ([]*usecase.VendorWithLocation, error) {
	locations, err := s.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	reported := make(map[string]*entity.VendorLocation, len(locations))
	for _, location := range locations {
		reported[phone.WithCountryCode(phone.DigitsOnly(location.Phone))] = location
	}

	vendors, err := s.vendorRepo.FindAll(ctx, 0)
	if err != nil {
		return nil, err
	}

	merged := make([]*usecase.VendorWithLocation, 0, len(vendors))
	for _, vendor := range vendors {
		row := &usecase.VendorWithLocation{
			ID:            vendor.ID,
			Name:          vendor.Name,
			ContactNumber: vendor.ContactNumber,
			MapsLink:      vendor.MapsLink,
			Latitude:      vendor.Latitude,
			Longitude:     vendor.Longitude,
			UpdatedAt:     vendor.UpdatedAt,
		}

		key := phone.WithCountryCode(phone.DigitsOnly(vendor.ContactNumber))
		if location, ok := reported[key]; ok {
			lat, lng := location.Location.Lat, location.Location.Lng
			row.Latitude = &lat
			row.Longitude = &lng
			row.LocationSource = usecase.LocationSourceWhatsApp
			row.UpdatedAt = location.UpdatedAt
		} else if location, ok := geo.FromMapsURL(vendor.MapsLink); ok {
			lat, lng := location.Lat, location.Lng
			row.Latitude = &lat
			row.Longitude = &lng
			row.LocationSource = usecase.LocationSourceMapsLink
		}

		merged = append(merged, row)
	}

	return merged, nil
}

// buildUploadURL generates the vendor-specific photo upload link.
func buildUploadURL(cfg *config.Config, msisdn string) string {
	baseURL := "http://localhost:5173"
	if cfg.Frontend != nil && cfg.Frontend.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.Frontend.BaseURL, "/")
	}

	return fmt.Sprintf("%s/vendor-upload?phone=%s", baseURL, url.QueryEscape(msisdn))
}
