package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "tienda-api/internal/handler/dto/response"
	"tienda-api/internal/infra"
	"tienda-api/internal/usecase/queries"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary List products
// @Description List products, optionally filtered by category and subcategory slug
// @Tags catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param subcategory query string false "Subcategory slug"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var filters queries.ProductFilters
	if category := c.Query("category"); category != "" {
		filters.Category = &category
		if subcategory := c.Query("subcategory"); subcategory != "" {
			filters.Subcategory = &subcategory
		}
	}

	views, err := h.catalog.ListProducts(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}

	data, err := resdto.FromProductViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, resdto.ProductListResponse{OK: true, Data: data})
}

// @Summary Get product
// @Description Get a single product by slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} resdto.ProductDetailResponse
// @Failure 404 {object} resdto.FailureResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	view, err := h.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, resdto.Failure("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}

	data, err := resdto.FromProductView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, resdto.ProductDetailResponse{OK: true, Data: data})
}

// @Summary List categories
// @Description List categories with their subcategories
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CategoryListResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}

	data, err := resdto.FromCategoryViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, resdto.Failure("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, resdto.CategoryListResponse{OK: true, Data: data})
}
