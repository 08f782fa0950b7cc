package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"khojo/config"
	"khojo/internal/delivery/http/validator"
	"khojo/internal/domain/entity"
	"khojo/internal/domain/repository"
	mockRepo "khojo/internal/mocks/repository"
	mockSvc "khojo/internal/mocks/service"
	"khojo/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorHandlerMocks struct {
	vendorRepo   *mockRepo.MockVendorRepository
	locationRepo *mockRepo.MockVendorLocationRepository
	messenger    *mockSvc.MockMessenger
}

func newVendorTestHandler(t *testing.T) (*VendorHandler, *vendorHandlerMocks) {
	t.Helper()

	cfg := &config.Config{
		Messaging: &config.MessagingConfig{Provider: "meta", Meta: &config.MetaConfig{}},
		Frontend:  &config.FrontendConfig{BaseURL: "https://laarikhojo.in"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mocks := &vendorHandlerMocks{
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		locationRepo: mockRepo.NewMockVendorLocationRepository(t),
		messenger:    mockSvc.NewMockMessenger(t),
	}

	vendorUC := impl.NewVendorService(
		mocks.vendorRepo,
		mocks.locationRepo,
		mocks.messenger,
		cfg,
		logger,
	)

	h := NewVendorHandler(VendorHandlerParams{
		VendorUC: vendorUC,
		Logger:   logger,
	})

	return h, mocks
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestVendorHandler_SendPhotoUploadInvitation_Success(t *testing.T) {
	h, mocks := newVendorTestHandler(t)

	vendor := &entity.Vendor{ID: uuid.New(), Name: "Raju Chaat", ContactNumber: "9876543210"}
	mocks.vendorRepo.EXPECT().
		FindByContactVariants(mock.Anything, mock.Anything).
		Return(vendor, nil)

	mocks.messenger.EXPECT().
		SendTemplate(mock.Anything, "919876543210", "photo_upload_invitation", "en", mock.Anything).
		Return(nil)

	c, rec := newJSONContext(http.MethodPost, "/api/send-photo-upload-invitation",
		`{"phoneNumber": "9876543210"}`)
	require.NoError(t, h.SendPhotoUploadInvitation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestVendorHandler_SendPhotoUploadInvitation_MissingPhone(t *testing.T) {
	h, _ := newVendorTestHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/api/send-photo-upload-invitation", `{}`)
	require.NoError(t, h.SendPhotoUploadInvitation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVendorHandler_SendPhotoUploadInvitation_VendorNotFound(t *testing.T) {
	h, mocks := newVendorTestHandler(t)

	mocks.vendorRepo.EXPECT().
		FindByContactVariants(mock.Anything, mock.Anything).
		Return(nil, repository.ErrVendorNotFound)

	c, rec := newJSONContext(http.MethodPost, "/api/send-photo-upload-invitation",
		`{"phoneNumber": "9876543210"}`)
	require.NoError(t, h.SendPhotoUploadInvitation(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestVendorHandler_ListVendors(t *testing.T) {
	h, mocks := newVendorTestHandler(t)

	mocks.locationRepo.EXPECT().
		FindAll(mock.Anything).
		Return([]*entity.VendorLocation{}, nil)

	mocks.vendorRepo.EXPECT().
		FindAll(mock.Anything, 0).
		Return([]*entity.Vendor{
			{ID: uuid.New(), Name: "Raju Chaat", ContactNumber: "9876543210"},
		}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/all-users", "")
	require.NoError(t, h.ListVendors(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
}
