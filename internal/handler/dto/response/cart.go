package response

import (
	"github.com/google/uuid"

	"tienda-api/internal/domain/cart"
)

type CartLineResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	Qty       int       `json:"qty"`
}

type CartResponse struct {
	OK       bool               `json:"ok"`
	ID       uuid.UUID          `json:"id"`
	Lines    []CartLineResponse `json:"lines"`
	Subtotal float64            `json:"subtotal"`
	TotalQty int                `json:"totalQty"`
}

func FromCart(c *cart.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, CartLineResponse{
			ProductID: l.ProductID,
			Slug:      l.Slug,
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Color:     l.Color,
			Size:      l.Size,
			Qty:       l.Qty,
		})
	}
	return CartResponse{
		OK:       true,
		ID:       c.ID,
		Lines:    lines,
		Subtotal: c.Subtotal(),
		TotalQty: c.TotalQty(),
	}
}
