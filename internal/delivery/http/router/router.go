// Package router contains routing setup for the HTTP delivery.
package router

import (
	"khojo/config"
	"khojo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler *handler.WebhookHandler
	VendorHandler  *handler.VendorHandler
	HealthHandler  *handler.HealthHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler *handler.WebhookHandler
	vendorHandler  *handler.VendorHandler
	healthHandler  *handler.HealthHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler: params.WebhookHandler,
		vendorHandler:  params.VendorHandler,
		healthHandler:  params.HealthHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	apiGroup := e.Group("/api")
	{
		// Meta webhook: GET is the subscription handshake, POST the deliveries
		apiGroup.GET("/webhook", r.webhookHandler.Verify)
		apiGroup.POST("/webhook", r.webhookHandler.Receive)

		// Admin-dashboard triggered operations
		apiGroup.POST("/send-photo-upload-invitation", r.vendorHandler.SendPhotoUploadInvitation)

		// Public map data
		apiGroup.GET("/all-users", r.vendorHandler.ListVendors)
	}
}
