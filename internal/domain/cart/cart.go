package cart

import (
	"strings"

	"github.com/google/uuid"

	"tienda-api/internal/pkg/errs"
)

var (
	ErrInvalidQuantity = errs.New("quantity must be positive")
	ErrLineNotFound    = errs.New("cart line not found")
)

// Line is a snapshot of a product at the moment it was added. Identity for
// merge purposes is (product id, variant): adding the same product+variant
// again increments quantity, a different variant creates a separate line.
type Line struct {
	ProductID uuid.UUID `json:"productId"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	Qty       int       `json:"qty"`
}

// Key is the merge discriminator for a line.
func (l Line) Key() string {
	return strings.Join([]string{l.ProductID.String(), l.Color, l.Size}, "|")
}

type Cart struct {
	ID    uuid.UUID `json:"id"`
	Lines []Line    `json:"lines"`
}

func New(id uuid.UUID) *Cart {
	return &Cart{ID: id}
}

// Add merges the line into the cart. Existing (product, variant) lines gain
// the added quantity; the stored snapshot (name, price, image) is kept from
// the first add.
func (c *Cart) Add(line Line) error {
	if line.Qty <= 0 {
		return ErrInvalidQuantity
	}
	key := line.Key()
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines[i].Qty += line.Qty
			return nil
		}
	}
	c.Lines = append(c.Lines, line)
	return nil
}

// SetQty replaces a line's quantity. A quantity of zero or less removes the
// line.
func (c *Cart) SetQty(key string, qty int) error {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			if qty <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
				return nil
			}
			c.Lines[i].Qty = qty
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Remove(key string) error {
	for i := range c.Lines {
		if c.Lines[i].Key() == key {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Qty)
	}
	return total
}

func (c *Cart) TotalQty() int {
	var n int
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}
