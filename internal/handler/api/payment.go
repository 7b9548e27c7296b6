package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "tienda-api/internal/handler/dto/request"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
)

type PaymentHandler struct {
	payments commands.PaymentCommands
}

func NewPaymentHandler(payments commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// @Summary Create payment preference
// @Description Build a hosted-checkout preference and persist its id onto the order
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePreferenceRequest true "Preference request"
// @Success 200 {object} resdto.CreatePreferenceResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /payments/preference [post]
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var req reqdto.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.FailureMessage("Invalid request format"))
		return
	}

	result, err := h.payments.CreatePreference(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidOrderRef) {
			c.JSON(http.StatusBadRequest, resdto.FailureMessage("Invalid external reference"))
			return
		}
		c.JSON(http.StatusInternalServerError, resdto.FailureMessage("Failed to create payment preference"))
		return
	}

	c.JSON(http.StatusOK, resdto.CreatePreferenceResponse{OK: true, ID: result.PreferenceID})
}
