package readstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tienda-api/internal/infra"
	"tienda-api/internal/pkg/pgconv"
	"tienda-api/internal/usecase/queries"
)

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

const productSelectSQL = `
SELECT p.id, p.slug, p.name, p.description, p.price, p.image_url,
	c.slug AS category, s.slug AS subcategory,
	p.sizes, p.colors, p.in_stock, p.created_at
FROM products p
JOIN categories c ON c.id = p.category_id
LEFT JOIN subcategories s ON s.id = p.subcategory_id`

func (r *ProductReadStore) ListProducts(ctx context.Context, filters queries.ProductFilters) ([]queries.ProductView, error) {
	sql := productSelectSQL
	args := []any{}

	if filters.Category != nil {
		args = append(args, *filters.Category)
		sql += fmt.Sprintf(" WHERE c.slug = $%d", len(args))
		if filters.Subcategory != nil {
			args = append(args, *filters.Subcategory)
			sql += fmt.Sprintf(" AND s.slug = $%d", len(args))
		}
	}
	sql += " ORDER BY p.created_at DESC"

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	products, err := pgx.CollectRows(rows, scanProductView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan products", err)
	}
	return products, nil
}

func (r *ProductReadStore) GetProductBySlug(ctx context.Context, slug string) (*queries.ProductView, error) {
	rows, err := r.pool.Query(ctx, productSelectSQL+" WHERE p.slug = $1", slug)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product by slug", err)
	}
	defer rows.Close()

	view, err := pgx.CollectExactlyOneRow(rows, scanProductView)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by slug", err)
	}
	return &view, nil
}

func scanProductView(row pgx.CollectableRow) (queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(
		&v.ID, &v.Slug, &v.Name, &v.Description, &v.Price, &v.Image,
		&v.Category, &v.Subcategory, &v.Sizes, &v.Colors, &v.InStock,
		&v.CreatedAt,
	)
	return v, err
}

func (r *ProductReadStore) ListCategories(ctx context.Context) ([]queries.CategoryView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.slug, c.name, s.id, s.slug, s.name
		FROM categories c
		LEFT JOIN subcategories s ON s.category_id = c.id
		ORDER BY c.name, s.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var (
		out   []queries.CategoryView
		index = map[string]int{}
	)
	for rows.Next() {
		var (
			cat     queries.CategoryView
			subID   pgtype.UUID
			subSlug pgtype.Text
			subName pgtype.Text
		)
		if err := rows.Scan(&cat.ID, &cat.Slug, &cat.Name, &subID, &subSlug, &subName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}

		i, ok := index[cat.Slug]
		if !ok {
			i = len(out)
			index[cat.Slug] = i
			out = append(out, cat)
		}
		if id := pgconv.UUIDPtrFromPgtype(subID); id != nil {
			out[i].Subcategories = append(out[i].Subcategories, queries.SubcategoryView{
				ID:   *id,
				Slug: subSlug.String,
				Name: subName.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate categories", err)
	}
	return out, nil
}
