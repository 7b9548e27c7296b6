package response

import "tienda-api/internal/usecase/queries"

type CouponInfo struct {
	Code  string  `json:"code"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type ValidateCouponResponse struct {
	OK         bool       `json:"ok"`
	Discount   float64    `json:"discount"`
	Coupon     CouponInfo `json:"coupon"`
	FinalTotal float64    `json:"finalTotal"`
}

func FromCouponValidation(r *queries.CouponValidationResult) ValidateCouponResponse {
	return ValidateCouponResponse{
		OK:       true,
		Discount: r.Discount,
		Coupon: CouponInfo{
			Code:  r.Code,
			Type:  r.Type,
			Value: r.Value,
		},
		FinalTotal: r.FinalTotal,
	}
}
