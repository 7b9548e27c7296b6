package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "tienda-api/internal/handler/dto/request"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
)

type OrderHandler struct {
	orders commands.OrderCommands
}

func NewOrderHandler(orders commands.OrderCommands) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// @Summary Create order
// @Description Insert an order with its line-item snapshots, status pending_payment
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Checkout payload"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid request format"))
		return
	}

	result, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, resdto.Failure("Cart is empty"))
			return
		}
		c.JSON(http.StatusInternalServerError, resdto.Failure("Failed to create order"))
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{OK: true, OrderID: result.OrderID})
}
