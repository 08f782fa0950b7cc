package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"khojo/internal/domain/entity"
	"khojo/internal/domain/repository"
	mockRepo "khojo/internal/mocks/repository"
	mockSvc "khojo/internal/mocks/service"
	"khojo/internal/phone"
	"khojo/internal/usecase"
	"khojo/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookServiceMocks struct {
	locationRepo *mockRepo.MockVendorLocationRepository
	vendorRepo   *mockRepo.MockVendorRepository
	messenger    *mockSvc.MockMessenger
	ledger       *mockSvc.MockProcessedLedger
}

func newWebhookService(t *testing.T) (usecase.WebhookUsecase, *webhookServiceMocks) {
	t.Helper()

	mocks := &webhookServiceMocks{
		locationRepo: mockRepo.NewMockVendorLocationRepository(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		messenger:    mockSvc.NewMockMessenger(t),
		ledger:       mockSvc.NewMockProcessedLedger(t),
	}

	svc := NewWebhookService(
		mocks.locationRepo,
		mocks.vendorRepo,
		mocks.messenger,
		mocks.ledger,
		newTestConfig(),
		newDiscardLogger(),
	)

	return svc, mocks
}

func marshalPayload(t *testing.T, value whatsapp.ChangeValue) []byte {
	t.Helper()

	payload := whatsapp.Payload{
		Object: "whatsapp_business_account",
		Entry: []whatsapp.Entry{{
			ID:      "entry-1",
			Changes: []whatsapp.Change{{Field: "messages", Value: value}},
		}},
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return body
}

func locationChangeValue(from string, lat, lng float64) whatsapp.ChangeValue {
	return whatsapp.ChangeValue{
		Contacts: []whatsapp.Contact{{
			WaID:    from,
			Profile: whatsapp.ContactProfile{Name: "Raju Chaat"},
		}},
		Messages: []whatsapp.Message{{
			From:      from,
			ID:        "wamid.loc1",
			Timestamp: "1700000000",
			Type:      whatsapp.TypeLocation,
			Location:  &whatsapp.Location{Latitude: lat, Longitude: lng, Name: "Law Garden"},
		}},
	}
}

func TestWebhookService_VerifyHandshake(t *testing.T) {
	svc, _ := newWebhookService(t)

	challenge, ok := svc.VerifyHandshake("subscribe", "verify-token", "challenge-123")
	require.True(t, ok)
	assert.Equal(t, "challenge-123", challenge)

	_, ok = svc.VerifyHandshake("subscribe", "wrong-token", "challenge-123")
	assert.False(t, ok)

	_, ok = svc.VerifyHandshake("unsubscribe", "verify-token", "challenge-123")
	assert.False(t, ok)
}

func TestWebhookService_VerifyHandshake_NoTokenConfigured(t *testing.T) {
	svc := NewWebhookService(
		mockRepo.NewMockVendorLocationRepository(t),
		mockRepo.NewMockVendorRepository(t),
		mockSvc.NewMockMessenger(t),
		mockSvc.NewMockProcessedLedger(t),
		newTestConfig(),
		newDiscardLogger(),
	)
	webhookSvc := svc.(*webhookService)
	webhookSvc.config.Webhook.VerifyToken = ""

	_, ok := svc.VerifyHandshake("subscribe", "", "challenge-123")
	assert.False(t, ok)
}

func TestWebhookService_ProcessPayload_LocationMessage(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	mocks.locationRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.VendorLocation) bool {
			return record.Phone == "919876543210" &&
				record.ProfileName == "Raju Chaat" &&
				record.Location.Lat == 23.0225 &&
				record.Location.Lng == 72.5714 &&
				record.LastMessageID == "wamid.loc1" &&
				!record.LastMessageTs.IsZero()
		})).
		Return(nil)

	mocks.messenger.EXPECT().
		SendText(ctx, "919876543210", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Latitude: 23.0225") &&
				strings.Contains(body, "Longitude: 72.5714")
		})).
		Return(nil)

	body := marshalPayload(t, locationChangeValue("919876543210", 23.0225, 72.5714))
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_OutOfRangeLocation(t *testing.T) {
	svc, _ := newWebhookService(t)

	// No upsert and no confirmation; the failure is logged and swallowed.
	body := marshalPayload(t, locationChangeValue("919876543210", 123.45, 72.5714))
	require.NoError(t, svc.ProcessPayload(context.Background(), body))
}

func TestWebhookService_ProcessPayload_MapsLinkText(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	mocks.locationRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.VendorLocation) bool {
			return record.Phone == "919876543210" &&
				record.Location.Lat == 23.0225 &&
				record.Location.Lng == 72.5714
		})).
		Return(nil)

	mocks.messenger.EXPECT().
		SendText(ctx, "919876543210", mock.AnythingOfType("string")).
		Return(nil)

	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{{
			From:      "919876543210",
			ID:        "wamid.text1",
			Timestamp: "1700000000",
			Type:      whatsapp.TypeText,
			Text:      &whatsapp.Text{Body: "my spot https://www.google.com/maps/@23.0225,72.5714,15z"},
		}},
	})
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_HelpKeyword(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	mocks.messenger.EXPECT().
		SendText(ctx, "919876543210", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Laari Khojo")
		})).
		Return(nil)

	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{{
			From: "919876543210",
			ID:   "wamid.help1",
			Type: whatsapp.TypeText,
			Text: &whatsapp.Text{Body: "  Help "},
		}},
	})
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_PlainTextIgnored(t *testing.T) {
	svc, _ := newWebhookService(t)

	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{{
			From: "919876543210",
			ID:   "wamid.text2",
			Type: whatsapp.TypeText,
			Text: &whatsapp.Text{Body: "see you tomorrow"},
		}},
	})
	require.NoError(t, svc.ProcessPayload(context.Background(), body))
}

func TestWebhookService_ProcessPayload_ButtonReply(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	vendor := &entity.Vendor{ID: uuid.New(), Name: "Raju Chaat", ContactNumber: "9876543210"}
	mocks.vendorRepo.EXPECT().
		FindByContactVariants(ctx, phone.CandidateVariants("919876543210")).
		Return(vendor, nil)

	mocks.messenger.EXPECT().
		SendText(ctx, "919876543210", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Raju Chaat") &&
				strings.Contains(body, "https://laarikhojo.in/vendor-upload?phone=919876543210")
		})).
		Return(nil)

	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{{
			From: "919876543210",
			ID:   "wamid.btn1",
			Type: whatsapp.TypeInteractive,
			Interactive: &whatsapp.Interactive{
				Type:        "button_reply",
				ButtonReply: &whatsapp.ButtonReply{ID: "upload_photo", Title: "📤 Upload Photo"},
			},
		}},
	})
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_ButtonReplyUnknownVendor(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	mocks.vendorRepo.EXPECT().
		FindByContactVariants(ctx, phone.CandidateVariants("919876543210")).
		Return(nil, repository.ErrVendorNotFound)

	// No message is sent for an unregistered number.
	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{{
			From: "919876543210",
			ID:   "wamid.btn2",
			Type: whatsapp.TypeInteractive,
			Interactive: &whatsapp.Interactive{
				Type:        "button_reply",
				ButtonReply: &whatsapp.ButtonReply{ID: "upload_photo", Title: "📤 Upload Photo"},
			},
		}},
	})
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_UnrecognizedButtonIgnored(t *testing.T) {
	svc, _ := newWebhookService(t)

	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{{
			From: "919876543210",
			ID:   "wamid.btn3",
			Type: whatsapp.TypeInteractive,
			Interactive: &whatsapp.Interactive{
				Type:        "button_reply",
				ButtonReply: &whatsapp.ButtonReply{ID: "rate_us", Title: "Rate Us"},
			},
		}},
	})
	require.NoError(t, svc.ProcessPayload(context.Background(), body))
}

func TestWebhookService_ProcessPayload_StatusDeduplicated(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	mocks.ledger.EXPECT().Observe("wamid.status1").Return(true).Once()
	mocks.ledger.EXPECT().Observe("wamid.status1").Return(false).Once()

	body := marshalPayload(t, whatsapp.ChangeValue{
		Statuses: []whatsapp.Status{{ID: "wamid.status1", Status: "delivered", Timestamp: "1700000000"}},
	})

	require.NoError(t, svc.ProcessPayload(ctx, body))
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_TemplateStatusID(t *testing.T) {
	svc, mocks := newWebhookService(t)

	mocks.ledger.EXPECT().Observe("tmpl-42").Return(true).Once()

	body := marshalPayload(t, whatsapp.ChangeValue{MessageTemplateID: "tmpl-42"})
	require.NoError(t, svc.ProcessPayload(context.Background(), body))
}

func TestWebhookService_ProcessPayload_FailureDoesNotAbortSiblings(t *testing.T) {
	svc, mocks := newWebhookService(t)
	ctx := context.Background()

	mocks.locationRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.VendorLocation) bool {
			return record.Phone == "911111111111"
		})).
		Return(assert.AnError)

	mocks.locationRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.VendorLocation) bool {
			return record.Phone == "912222222222"
		})).
		Return(nil)

	mocks.messenger.EXPECT().
		SendText(ctx, "912222222222", mock.AnythingOfType("string")).
		Return(nil)

	body := marshalPayload(t, whatsapp.ChangeValue{
		Messages: []whatsapp.Message{
			{
				From:     "911111111111",
				ID:       "wamid.a",
				Type:     whatsapp.TypeLocation,
				Location: &whatsapp.Location{Latitude: 23.0, Longitude: 72.5},
			},
			{
				From:     "912222222222",
				ID:       "wamid.b",
				Type:     whatsapp.TypeLocation,
				Location: &whatsapp.Location{Latitude: 23.1, Longitude: 72.6},
			},
		},
	})
	require.NoError(t, svc.ProcessPayload(ctx, body))
}

func TestWebhookService_ProcessPayload_MalformedJSON(t *testing.T) {
	svc, _ := newWebhookService(t)

	err := svc.ProcessPayload(context.Background(), []byte("{not json"))
	assert.Error(t, err)
}
