package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/pgconv"
	"tienda-api/internal/usecase/commands"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.OrderSnapshot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, nombres, email, departamento, provincia, distrito,
			direccion, referencia, subtotal, envio, total, status, email_sent
		FROM orders
		WHERE id = $1`, id)

	var snap commands.OrderSnapshot
	err := row.Scan(
		&snap.ID, &snap.Nombres, &snap.Email, &snap.Departamento,
		&snap.Provincia, &snap.Distrito, &snap.Direccion, &snap.Referencia,
		&snap.Subtotal, &snap.Envio, &snap.Total, &snap.Status, &snap.EmailSent,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by id", err)
	}
	return &snap, nil
}

func (r *OrderReadStore) ListItems(ctx context.Context, orderID uuid.UUID) ([]commands.OrderItemSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, size, qty, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []commands.OrderItemSnapshot
	for rows.Next() {
		var it commands.OrderItemSnapshot
		if err := rows.Scan(&it.Name, &it.Size, &it.Qty, &it.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}
