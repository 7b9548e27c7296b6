package coupon

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tienda-api/internal/pkg/errs"
)

var (
	ErrCouponInvalid = errs.New("coupon invalid")
	ErrCouponExpired = errs.New("coupon expired")
)

type DiscountType string

const (
	Percentage DiscountType = "percentage"
	Fixed      DiscountType = "fixed"
)

type Coupon struct {
	id        uuid.UUID
	code      string
	kind      DiscountType
	value     float64
	isActive  bool
	expiresAt *time.Time
}

func NewCoupon(id uuid.UUID, code string, kind DiscountType, value float64, isActive bool, expiresAt *time.Time) *Coupon {
	return &Coupon{
		id:        id,
		code:      NormalizeCode(code),
		kind:      kind,
		value:     value,
		isActive:  isActive,
		expiresAt: expiresAt,
	}
}

// NormalizeCode folds user input to the stored uppercase form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateUsage reports whether the coupon can be applied at t. Expiry is
// checked before the active flag so an expired-but-active coupon reports
// expired, not invalid.
func (c *Coupon) ValidateUsage(t time.Time) error {
	if c.expiresAt != nil && t.After(*c.expiresAt) {
		return ErrCouponExpired
	}
	if !c.isActive {
		return ErrCouponInvalid
	}
	return nil
}

// Discount computes the discount for the given subtotal. Percentage coupons
// take value as a percent of the subtotal. Fixed coupons return value as-is,
// deliberately unclamped: a fixed discount larger than the subtotal yields a
// negative final total, which is the storefront's current contract.
func (c *Coupon) Discount(subtotal float64) float64 {
	if c.kind == Percentage {
		return subtotal * c.value / 100
	}
	return c.value
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() string          { return c.code }
func (c *Coupon) Kind() DiscountType    { return c.kind }
func (c *Coupon) Value() float64        { return c.value }
func (c *Coupon) IsActive() bool        { return c.isActive }
func (c *Coupon) ExpiresAt() *time.Time { return c.expiresAt }
