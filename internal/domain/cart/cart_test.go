//go:build unit

package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-api/internal/domain/cart"
)

func TestAddMergesSameVariant(t *testing.T) {
	productID := uuid.New()
	c := cart.New(uuid.New())

	require.NoError(t, c.Add(cart.Line{ProductID: productID, Name: "Polo", Price: 49.90, Color: "red", Qty: 2}))
	require.NoError(t, c.Add(cart.Line{ProductID: productID, Name: "Polo", Price: 49.90, Color: "red", Qty: 3}))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Qty)
}

func TestAddDifferentVariantCreatesNewLine(t *testing.T) {
	productID := uuid.New()
	c := cart.New(uuid.New())

	require.NoError(t, c.Add(cart.Line{ProductID: productID, Color: "red", Qty: 2}))
	require.NoError(t, c.Add(cart.Line{ProductID: productID, Color: "red", Qty: 3}))
	require.NoError(t, c.Add(cart.Line{ProductID: productID, Color: "blue", Qty: 1}))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 5, c.Lines[0].Qty)
	assert.Equal(t, 1, c.Lines[1].Qty)
}

func TestAddKeepsFirstSnapshot(t *testing.T) {
	productID := uuid.New()
	c := cart.New(uuid.New())

	require.NoError(t, c.Add(cart.Line{ProductID: productID, Name: "Polo", Price: 49.90, Qty: 1}))
	require.NoError(t, c.Add(cart.Line{ProductID: productID, Name: "Polo v2", Price: 59.90, Qty: 1}))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "Polo", c.Lines[0].Name)
	assert.InDelta(t, 49.90, c.Lines[0].Price, 0.001)
}

func TestAddRejectsNonPositiveQty(t *testing.T) {
	c := cart.New(uuid.New())
	err := c.Add(cart.Line{ProductID: uuid.New(), Qty: 0})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
}

func TestSetQty(t *testing.T) {
	productID := uuid.New()
	c := cart.New(uuid.New())
	line := cart.Line{ProductID: productID, Size: "M", Qty: 2}
	require.NoError(t, c.Add(line))

	require.NoError(t, c.SetQty(line.Key(), 7))
	assert.Equal(t, 7, c.Lines[0].Qty)

	// zero removes the line
	require.NoError(t, c.SetQty(line.Key(), 0))
	assert.Empty(t, c.Lines)

	assert.ErrorIs(t, c.SetQty(line.Key(), 1), cart.ErrLineNotFound)
}

func TestRemove(t *testing.T) {
	productID := uuid.New()
	c := cart.New(uuid.New())
	red := cart.Line{ProductID: productID, Color: "red", Qty: 1}
	blue := cart.Line{ProductID: productID, Color: "blue", Qty: 1}
	require.NoError(t, c.Add(red))
	require.NoError(t, c.Add(blue))

	require.NoError(t, c.Remove(red.Key()))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "blue", c.Lines[0].Color)

	assert.ErrorIs(t, c.Remove(red.Key()), cart.ErrLineNotFound)
}

func TestSubtotalAndTotalQty(t *testing.T) {
	c := cart.New(uuid.New())
	require.NoError(t, c.Add(cart.Line{ProductID: uuid.New(), Price: 10.50, Qty: 2}))
	require.NoError(t, c.Add(cart.Line{ProductID: uuid.New(), Price: 5.00, Qty: 3}))

	assert.InDelta(t, 36.00, c.Subtotal(), 0.001)
	assert.Equal(t, 5, c.TotalQty())
}
