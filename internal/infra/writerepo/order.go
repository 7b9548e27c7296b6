package writerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tienda-api/internal/infra"
	"tienda-api/internal/usecase/commands"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const insertOrderSQL = `
INSERT INTO orders (
	id, receipt_type, nombres, doc_type, doc_number, ruc, razon_social,
	direccion_fiscal, telefono, email, departamento, provincia, distrito,
	direccion, referencia, subtotal, envio, total, carrier, shipping_mode,
	gateway, applied_coupon, status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	$16, $17, $18, $19, $20, $21, $22, $23
)`

const insertOrderItemSQL = `
INSERT INTO order_items (order_id, slug, name, size, qty, price)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *OrderRepository) CreateWithItems(ctx context.Context, tx pgx.Tx, order commands.NewOrder, items []commands.NewOrderItem) error {
	_, err := tx.Exec(ctx, insertOrderSQL,
		order.ID, order.ReceiptType, order.Nombres, order.DocType,
		order.DocNumber, order.RUC, order.RazonSocial, order.DireccionFiscal,
		order.Telefono, order.Email, order.Departamento, order.Provincia,
		order.Distrito, order.Direccion, order.Referencia, order.Subtotal,
		order.Envio, order.Total, order.Carrier, order.ShippingMode,
		order.Gateway, order.AppliedCoupon, order.Status,
	)
	if err != nil {
		return wrapPgErr("failed to insert order", err)
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(insertOrderItemSQL, order.ID, it.Slug, it.Name, it.Size, it.Qty, it.Price)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return wrapPgErr("failed to insert order items", err)
	}
	return nil
}

func (r *OrderRepository) SetPreferenceID(ctx context.Context, orderID uuid.UUID, preferenceID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET mp_preference_id = $2, updated_at = now() WHERE id = $1`,
		orderID, preferenceID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set preference id", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, upd commands.PaymentStatusUpdate) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET mp_payment_id = $2,
			mp_payment_status = $3,
			mp_payment_status_detail = $4,
			mp_raw = $5,
			updated_at = $6
		WHERE id = $1`,
		orderID, upd.PaymentID, upd.Status, upd.StatusDetail, upd.Raw, upd.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// ClaimEmailSent flips email_sent only when it is still false. The row count
// tells the caller whether this delivery won the flag against a concurrent
// duplicate.
func (r *OrderRepository) ClaimEmailSent(ctx context.Context, orderID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET email_sent = true, updated_at = now() WHERE id = $1 AND NOT email_sent`,
		orderID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim email flag", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) ReleaseEmailSent(ctx context.Context, orderID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE orders SET email_sent = false, updated_at = now() WHERE id = $1`,
		orderID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release email flag", err)
	}
	return nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
