package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "tienda-api/internal/handler/dto/request"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
)

type WebhookHandler struct {
	webhooks commands.WebhookCommands
}

func NewWebhookHandler(webhooks commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// @Summary Webhook health check
// @Description Lets the payment provider verify the webhook URL
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.WebhookHealthResponse
// @Router /payments/webhook [get]
func (h *WebhookHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.WebhookHealthResponse{OK: true})
}

// @Summary Payment webhook
// @Description Receive a payment-status notification and reconcile the order
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.WebhookNotification true "Provider notification"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 500 {object} resdto.WebhookResponse
// @Router /payments/webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req reqdto.WebhookNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that will never parse must not trigger an endless
		// provider retry loop, so acknowledge it as ignored.
		c.JSON(http.StatusOK, resdto.WebhookResponse{Status: "ignored"})
		return
	}

	outcome, err := h.webhooks.Process(c.Request.Context(), commands.Notification{
		Type:      req.Type,
		Action:    req.Action,
		PaymentID: req.Data.ID.String(),
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPaymentFetch):
			c.JSON(http.StatusInternalServerError, resdto.WebhookResponse{Status: "mp-error"})
		case errs.Is(err, commands.ErrOrderUpdate):
			c.JSON(http.StatusInternalServerError, resdto.WebhookResponse{Status: "db-error"})
		default:
			c.JSON(http.StatusInternalServerError, resdto.WebhookResponse{Status: "error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookResponse{Status: string(outcome)})
}
