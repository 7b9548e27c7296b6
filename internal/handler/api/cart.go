package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tienda-api/internal/domain/cart"
	reqdto "tienda-api/internal/handler/dto/request"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/commands"
)

type CartHandler struct {
	carts commands.CartCommands
}

func NewCartHandler(carts commands.CartCommands) *CartHandler {
	return &CartHandler{carts: carts}
}

// @Summary Create cart
// @Description Create an empty server-side cart and return its id
// @Tags carts
// @Produce json
// @Success 201 {object} resdto.CartResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	created, err := h.carts.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Failed to create cart"))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCart(created))
}

// @Summary Get cart
// @Description Get a cart with its lines and totals
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 404 {object} resdto.FailureResponse
// @Router /carts/{id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}
	found, err := h.carts.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(found))
}

// @Summary Add cart item
// @Description Merge a line into the cart; same product+variant increments quantity
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body reqdto.AddCartItemRequest true "Line to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 404 {object} resdto.FailureResponse
// @Router /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid request format"))
		return
	}
	updated, err := h.carts.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(updated))
}

// @Summary Update cart item quantity
// @Description Set a line's quantity; zero removes the line
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body reqdto.UpdateCartItemRequest true "Line and new quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 404 {object} resdto.FailureResponse
// @Router /carts/{id}/items [patch]
func (h *CartHandler) SetItemQty(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid request format"))
		return
	}
	updated, err := h.carts.SetItemQty(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(updated))
}

// @Summary Remove cart item
// @Description Remove a line from the cart
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param request body reqdto.RemoveCartItemRequest true "Line to remove"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 404 {object} resdto.FailureResponse
// @Router /carts/{id}/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}
	var req reqdto.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid request format"))
		return
	}
	updated, err := h.carts.RemoveItem(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(updated))
}

// @Summary Clear cart
// @Description Delete the cart entirely
// @Tags carts
// @Produce json
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 400 {object} resdto.FailureResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	id, ok := h.cartID(c)
	if !ok {
		return
	}
	if err := h.carts.Clear(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Failed to clear cart"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) cartID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, resdto.Failure("Invalid cart ID format"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *CartHandler) writeError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrCartNotFound):
		c.JSON(http.StatusNotFound, resdto.Failure("Cart not found"))
	case errs.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, resdto.Failure("Cart line not found"))
	case errs.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, resdto.Failure("Quantity must be positive"))
	default:
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
	}
}
