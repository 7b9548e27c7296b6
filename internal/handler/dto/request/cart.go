package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Slug      string    `json:"slug" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Price     float64   `json:"price" binding:"gte=0"`
	Image     string    `json:"image"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Qty       int       `json:"qty" binding:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
	Qty       int       `json:"qty"`
}

type RemoveCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Color     string    `json:"color"`
	Size      string    `json:"size"`
}
