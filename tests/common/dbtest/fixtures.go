//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Reference rows shared by the e2e suites. Kept small: one category tree,
// three coupons covering the validator's outcomes, and the canonical
// three-row ubigeo fixture.
const seedSQL = `
INSERT INTO categories (id, slug, name) VALUES
	('c0000000-0000-0000-0000-000000000001', 'ropa', 'Ropa')
ON CONFLICT (slug) DO NOTHING;

INSERT INTO subcategories (id, category_id, slug, name) VALUES
	('50000000-0000-0000-0000-000000000001', 'c0000000-0000-0000-0000-000000000001', 'polos', 'Polos')
ON CONFLICT (category_id, slug) DO NOTHING;

INSERT INTO products (id, slug, name, description, price, category_id, subcategory_id, sizes, colors, in_stock) VALUES
	('a0000000-0000-0000-0000-000000000001', 'polo-clasico', 'Polo clásico', 'Polo de algodón pima',
	 79.90, 'c0000000-0000-0000-0000-000000000001', '50000000-0000-0000-0000-000000000001',
	 '{S,M,L}', '{rojo,negro}', TRUE)
ON CONFLICT (slug) DO NOTHING;

INSERT INTO coupons (code, discount_type, value, is_active, expires_at) VALUES
	('VERANO10', 'percentage', 10, TRUE, NULL),
	('FIJO50', 'fixed', 50, TRUE, NULL),
	('VIEJO', 'percentage', 15, TRUE, '2020-01-01T00:00:00Z')
ON CONFLICT (code) DO NOTHING;

INSERT INTO ubigeo (departamento, provincia, distrito, nombre) VALUES
	('15', '00', '00', 'LIMA'),
	('15', '01', '00', 'LIMA'),
	('15', '01', '01', 'MIRAFLORES');
`

func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, seedSQL)
	return err
}

// ResetDB truncates mutable state and reseeds the reference rows so each
// subtest starts from a known database.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE order_items, orders, ubigeo RESTART IDENTITY CASCADE`)
	if err != nil {
		return err
	}
	return SeedReferenceData(pool)
}
