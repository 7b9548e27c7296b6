package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"tienda-api/internal/usecase/queries"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image,omitempty"`
	Category    string    `json:"category"`
	Subcategory *string   `json:"subcategory,omitempty"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SubcategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
	Name string    `json:"name"`
}

type CategoryResponse struct {
	ID            uuid.UUID             `json:"id"`
	Slug          string                `json:"slug"`
	Name          string                `json:"name"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type ProductListResponse struct {
	OK   bool              `json:"ok"`
	Data []ProductResponse `json:"data"`
}

type ProductDetailResponse struct {
	OK   bool            `json:"ok"`
	Data ProductResponse `json:"data"`
}

type CategoryListResponse struct {
	OK   bool               `json:"ok"`
	Data []CategoryResponse `json:"data"`
}

func FromProductView(v *queries.ProductView) (ProductResponse, error) {
	var resp ProductResponse
	err := copier.Copy(&resp, v)
	return resp, err
}

func FromProductViews(vs []queries.ProductView) ([]ProductResponse, error) {
	out := make([]ProductResponse, 0, len(vs))
	for i := range vs {
		resp, err := FromProductView(&vs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func FromCategoryViews(vs []queries.CategoryView) ([]CategoryResponse, error) {
	out := make([]CategoryResponse, 0, len(vs))
	for i := range vs {
		var resp CategoryResponse
		if err := copier.Copy(&resp, &vs[i]); err != nil {
			return nil, err
		}
		if resp.Subcategories == nil {
			resp.Subcategories = []SubcategoryResponse{}
		}
		out = append(out, resp)
	}
	return out, nil
}
