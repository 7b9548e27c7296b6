package readstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tienda-api/internal/domain/ubigeo"
	"tienda-api/internal/infra"
)

type UbigeoReadStore struct {
	pool *pgxpool.Pool
}

func NewUbigeoReadStore(pool *pgxpool.Pool) *UbigeoReadStore {
	return &UbigeoReadStore{pool: pool}
}

func (r *UbigeoReadStore) ListAll(ctx context.Context) ([]ubigeo.Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT departamento, provincia, distrito, nombre
		FROM ubigeo
		ORDER BY departamento, provincia, distrito`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ubigeo records", err)
	}
	defer rows.Close()

	var records []ubigeo.Record
	for rows.Next() {
		var rec ubigeo.Record
		if err := rows.Scan(&rec.Departamento, &rec.Provincia, &rec.Distrito, &rec.Nombre); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ubigeo record", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ubigeo records", err)
	}
	return records, nil
}
