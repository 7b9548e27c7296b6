package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tienda-api/internal/domain/coupon"
	reqdto "tienda-api/internal/handler/dto/request"
	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/pkg/errs"
	"tienda-api/internal/usecase/queries"
)

type CouponHandler struct {
	coupons queries.CouponQueries
}

func NewCouponHandler(coupons queries.CouponQueries) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

// @Summary Validate coupon
// @Description Validate a coupon code and compute the discount for a subtotal
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon validation request"
// @Success 200 {object} resdto.ValidateCouponResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.FailureMessage("Falta el código del cupón."))
		return
	}

	result, err := h.coupons.Validate(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		// Invalid and expired codes are expected business outcomes, not
		// failures: HTTP 200 with ok:false.
		switch {
		case errs.Is(err, coupon.ErrCouponExpired):
			c.JSON(http.StatusOK, resdto.FailureMessage("Cupón expirado."))
		case errs.Is(err, coupon.ErrCouponInvalid):
			c.JSON(http.StatusOK, resdto.FailureMessage("Cupón inválido."))
		default:
			c.JSON(http.StatusInternalServerError, resdto.FailureMessage("Error al validar el cupón."))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponValidation(result))
}
