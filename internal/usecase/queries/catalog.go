package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ProductView struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description *string
	Price       float64
	Image       *string
	Category    string
	Subcategory *string
	Sizes       []string
	Colors      []string
	InStock     bool
	CreatedAt   time.Time
}

type SubcategoryView struct {
	ID   uuid.UUID
	Slug string
	Name string
}

type CategoryView struct {
	ID            uuid.UUID
	Slug          string
	Name          string
	Subcategories []SubcategoryView
}

type ProductFilters struct {
	Category    *string
	Subcategory *string
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, filters ProductFilters) ([]ProductView, error)
	GetProductBySlug(ctx context.Context, slug string) (*ProductView, error)
	ListCategories(ctx context.Context) ([]CategoryView, error)
}
