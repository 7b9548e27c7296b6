package queries

import (
	"context"

	"tienda-api/internal/domain/coupon"
	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/clock"
	"tienda-api/internal/pkg/errs"
)

type CouponValidationResult struct {
	Code       string
	Type       string
	Value      float64
	Discount   float64
	FinalTotal float64
}

type CouponQueries interface {
	// Validate returns the computed discount for a code, or an error marked
	// with coupon.ErrCouponInvalid / coupon.ErrCouponExpired for the
	// expected business outcomes.
	Validate(ctx context.Context, code string, subtotal float64) (*CouponValidationResult, error)
}

type CouponStore interface {
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

type couponQueriesImpl struct {
	store CouponStore
	clock clock.Clock
}

func NewCouponQueries(store CouponStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, clock: clk}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, subtotal float64) (*CouponValidationResult, error) {
	c, err := q.store.FindByCode(ctx, coupon.NormalizeCode(code))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, coupon.ErrCouponInvalid)
		}
		return nil, errs.Wrap(err, "failed to look up coupon")
	}

	if err := c.ValidateUsage(q.clock.Now()); err != nil {
		return nil, err
	}

	discount := c.Discount(subtotal)
	return &CouponValidationResult{
		Code:       c.Code(),
		Type:       string(c.Kind()),
		Value:      c.Value(),
		Discount:   discount,
		FinalTotal: subtotal - discount,
	}, nil
}
