package controllers

import (
	"net/http"

	"admin-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WebhookController struct {
	Webhooks *services.WebhookService
	Logger   *zap.Logger
}

func NewWebhookController(webhooks *services.WebhookService, logger *zap.Logger) *WebhookController {
	return &WebhookController{Webhooks: webhooks, Logger: logger}
}

// HandleWebhook receives the provider's asynchronous payment events. The raw
// body is passed through untouched so the signature check sees exactly what
// was signed.
func (wc *WebhookController) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		wc.Logger.Warn("Failed to read webhook body", zap.Error(err))
		c.String(http.StatusInternalServerError, "Webhook error")
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	created, serviceErr := wc.Webhooks.HandleEvent(c.Request.Context(), payload, sigHeader)
	if serviceErr != nil {
		c.String(serviceErr.StatusCode, serviceErr.Message)
		return
	}

	if created {
		c.String(http.StatusOK, "Order created")
		return
	}
	c.String(http.StatusOK, "Unhandled event")
}
