package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"khojo/config"
	"khojo/internal/domain/entity"
	"khojo/internal/domain/repository"
	"khojo/internal/domain/service"
	"khojo/internal/geo"
	"khojo/internal/phone"
	"khojo/internal/usecase"
	"khojo/internal/whatsapp"

	"github.com/pkg/errors"
)

// helpKeywords are the inbound texts that trigger the static help reply.
var helpKeywords = map[string]struct{}{
	"help": {},
	"menu": {},
	"hi":   {},
}

const helpMessage = `Welcome to Laari Khojo!

Share your live location, or paste a Google Maps link, and customers will see your laari at its new spot right away.

You can update your location anytime by sending a new location.`

// webhookService processes verified webhook payloads.
type webhookService struct {
	locationRepo repository.VendorLocationRepository
	vendorRepo   repository.VendorRepository
	messenger    service.Messenger
	ledger       service.ProcessedLedger
	config       *config.Config
	logger       *slog.Logger
}

// NewWebhookService creates the webhook use case instance.
func NewWebhookService(
	locationRepo repository.VendorLocationRepository,
	vendorRepo repository.VendorRepository,
	messenger service.Messenger,
	ledger service.ProcessedLedger,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.WebhookUsecase {
	return &webhookService{
		locationRepo: locationRepo,
		vendorRepo:   vendorRepo,
		messenger:    messenger,
		ledger:       ledger,
		config:       cfg,
		logger:       logger,
	}
}

// VerifyHandshake validates the subscription handshake parameters.
func (s *webhookService) VerifyHandshake(mode, verifyToken, challenge string) (string, bool) {
	configured := ""
	if s.config.Webhook != nil {
		configured = s.config.Webhook.VerifyToken
	}

	if mode != "subscribe" || configured == "" || verifyToken != configured {
		return "", false
	}

	return challenge, true
}

// ProcessPayload decodes the raw body and processes every change in it.
func (s *webhookService) ProcessPayload(ctx context.Context, body []byte) error {
	var payload whatsapp.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return errors.Wrap(err, "failed to decode webhook payload")
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			s.processChange(ctx, &change.Value)
		}
	}

	return nil
}

// processChange handles one change value: status updates first, then each
// inbound message. A failure on one message is logged and never aborts its
// siblings.
func (s *webhookService) processChange(ctx context.Context, value *whatsapp.ChangeValue) {
	if statusID := value.StatusID(); statusID != "" {
		s.processStatus(value, statusID)
	}

	for i := range value.Messages {
		message := &value.Messages[i]
		if err := s.processMessage(ctx, value, message); err != nil {
			s.logger.Error("Failed to process webhook message",
				slog.String("messageId", message.ID),
				slog.String("type", message.Type),
				slog.String("error", err.Error()),
			)
		}
	}
}

// processStatus records a delivery/read/template status update exactly once.
func (s *webhookService) processStatus(value *whatsapp.ChangeValue, statusID string) {
	if first := s.ledger.Observe(statusID); !first {
		s.logger.Info("Duplicate status update ignored", slog.String("statusId", statusID))

		return
	}

	status := ""
	if len(value.Statuses) > 0 {
		status = value.Statuses[0].Status
	}

	s.logger.Info("Status update received",
		slog.String("statusId", statusID),
		slog.String("status", status),
	)
}

func (s *webhookService) processMessage(ctx context.Context, value *whatsapp.ChangeValue, message *whatsapp.Message) error {
	profileName := value.ProfileName(message.From)

	switch message.Type {
	case whatsapp.TypeLocation:
		if message.Location == nil {
			return errors.New("location message without location attachment")
		}

		location, err := geo.FromNative(
			message.Location.Latitude,
			message.Location.Longitude,
			message.Location.Name,
			message.Location.Address,
		)
		if err != nil {
			return err
		}

		return s.updateLocation(ctx, message, profileName, location)

	case whatsapp.TypeText:
		if message.Text == nil {
			return errors.New("text message without body")
		}

		if location, ok := geo.FromMapsURL(message.Text.Body); ok {
			return s.updateLocation(ctx, message, profileName, location)
		}

		if isHelpKeyword(message.Text.Body) {
			return s.sendText(ctx, message.From, helpMessage)
		}

		s.logger.Info("Ignoring inbound text message", slog.String("from", message.From))

		return nil

	case whatsapp.TypeInteractive:
		return s.processButtonReply(ctx, message)

	default:
		s.logger.Info("Ignoring unsupported message type",
			slog.String("from", message.From),
			slog.String("type", message.Type),
		)

		return nil
	}
}

// updateLocation upserts the sender's coordinate and confirms over WhatsApp.
func (s *webhookService) updateLocation(ctx context.Context, message *whatsapp.Message, profileName string, location geo.Location) error {
	record := &entity.VendorLocation{
		Phone:         phone.DigitsOnly(message.From),
		ProfileName:   profileName,
		Location:      location,
		LastMessageID: message.ID,
		LastMessageTs: message.SentAt(),
	}

	if err := s.locationRepo.Upsert(ctx, record); err != nil {
		return err
	}

	s.logger.Info("Vendor location updated",
		slog.String("phone", record.Phone),
		slog.Float64("lat", location.Lat),
		slog.Float64("lng", location.Lng),
	)

	confirmation := fmt.Sprintf(`Thank you for sharing your location! Your coordinates have been updated:
Latitude: %s
Longitude: %s

You can update your location anytime by sending a new location.`,
		strconv.FormatFloat(location.Lat, 'f', -1, 64),
		strconv.FormatFloat(location.Lng, 'f', -1, 64),
	)

	return s.sendText(ctx, message.From, confirmation)
}

// processButtonReply reacts to a tap on the photo upload button. An unknown
// vendor is logged, not surfaced; the platform retries on non-2xx and a retry
// cannot fix a missing profile.
func (s *webhookService) processButtonReply(ctx context.Context, message *whatsapp.Message) error {
	if message.Interactive == nil || message.Interactive.ButtonReply == nil {
		s.logger.Info("Ignoring interactive message without button reply", slog.String("from", message.From))

		return nil
	}

	reply := message.Interactive.ButtonReply
	if !isUploadButton(reply) {
		s.logger.Info("Ignoring unrecognized button reply",
			slog.String("from", message.From),
			slog.String("buttonId", reply.ID),
			slog.String("title", reply.Title),
		)

		return nil
	}

	vendor, err := s.vendorRepo.FindByContactVariants(ctx, phone.CandidateVariants(message.From))
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			s.logger.Info("Button reply from unregistered number", slog.String("from", message.From))

			return nil
		}

		return err
	}

	uploadURL := buildUploadURL(s.config, phone.WithCountryCode(phone.DigitsOnly(message.From)))
	body := fmt.Sprintf("Hi %s! Upload your laari photos here: %s", vendorDisplayName(vendor), uploadURL)

	return s.sendText(ctx, message.From, body)
}

// sendText normalizes the recipient and delivers a text message.
func (s *webhookService) sendText(ctx context.Context, rawTo, body string) error {
	to := phone.WithCountryCode(phone.DigitsOnly(rawTo))
	if err := s.messenger.SendText(ctx, to, body); err != nil {
		return errors.Wrapf(err, "failed to send text to %s", to)
	}

	return nil
}

func isHelpKeyword(body string) bool {
	_, ok := helpKeywords[strings.ToLower(strings.TrimSpace(body))]

	return ok
}

// isUploadButton matches the photo upload button by id or display title. The
// title carries an emoji prefix on real payloads, so match on the substring.
func isUploadButton(reply *whatsapp.ButtonReply) bool {
	if reply.ID == "upload_photo" {
		return true
	}

	return strings.Contains(strings.ToLower(reply.Title), "upload photo")
}

func vendorDisplayName(vendor *entity.Vendor) string {
	if vendor.Name != "" {
		return vendor.Name
	}

	return "Vendor"
}
