package handler

import (
	"log/slog"
	"net/http"

	"khojo/internal/delivery/http/response"
	domainerrors "khojo/internal/domain/errors"
	"khojo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler holds dependencies for vendor-related handlers.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// SendInvitationRequest represents the request body for the photo upload
// invitation endpoint.
type SendInvitationRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// SendPhotoUploadInvitation handles the admin-triggered photo upload invite.
func (h *VendorHandler) SendPhotoUploadInvitation(c echo.Context) error {
	var req SendInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Phone number is required")
	}

	if err := h.vendorUC.SendPhotoUploadInvitation(c.Request().Context(), req.PhoneNumber); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo upload invitation sent successfully")
}

// ListVendors handles retrieving all vendors merged with their locations.
func (h *VendorHandler) ListVendors(c echo.Context) error {
	vendors, err := h.vendorUC.ListVendorsWithLocation(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}

// handleAppError handles application errors.
func (h *VendorHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
