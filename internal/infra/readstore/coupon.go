package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tienda-api/internal/domain/coupon"
	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/pgconv"
)

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

// FindByCode expects an already normalized (uppercase) code.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, code, discount_type, value, is_active, expires_at
		FROM coupons
		WHERE code = $1`, code)

	var (
		id           uuid.UUID
		storedCode   string
		discountType string
		value        float64
		isActive     bool
		expiresAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &storedCode, &discountType, &value, &isActive, &expiresAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	var exp *time.Time
	if expiresAt.Valid {
		t := expiresAt.Time
		exp = &t
	}
	return coupon.NewCoupon(id, storedCode, coupon.DiscountType(discountType), value, isActive, exp), nil
}
