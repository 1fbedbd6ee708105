package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SOf1AN3/myks-sports-bolt/models"
)

func floatPtr(v float64) *float64 { return &v }

func tshirt() models.Product {
	return models.Product{
		ID:            "1",
		Name:          "T-Shirt Performance Pro",
		Price:         45,
		OriginalPrice: floatPtr(60),
		OnSale:        true,
	}
}

func legging() models.Product {
	return models.Product{
		ID:    "2",
		Name:  "Legging Ultra Flex",
		Price: 65,
	}
}

func TestAddItemMergesSameSelection(t *testing.T) {
	s := NewStore()

	s.AddItem(tshirt(), "M", "Noir")
	s.AddItem(tshirt(), "M", "Noir")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Items()[0].Quantity)
	assert.Equal(t, 2, s.TotalItems())
}

func TestAddItemDistinctVariantsGetOwnLines(t *testing.T) {
	s := NewStore()

	s.AddItem(tshirt(), "M", "Noir")
	s.AddItem(tshirt(), "L", "Noir")
	s.AddItem(tshirt(), "M", "Blanc")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.TotalItems())
}

func TestTotalPriceChargesOriginalPriceOnSale(t *testing.T) {
	s := NewStore()

	// Sale item charges its pre-discount price, so 60 + 65 = 125,
	// not the displayed 45 + 65 = 110.
	s.AddItem(tshirt(), "M", "Noir")
	s.AddItem(legging(), "S", "Violet")

	assert.InDelta(t, 125, s.TotalPrice(), 1e-9)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	s.AddItem(legging(), "S", "Violet")
	key := s.Items()[0].Key()

	s.UpdateQuantity(key, 4)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 4, s.Items()[0].Quantity)
	assert.InDelta(t, 4*65, s.TotalPrice(), 1e-9)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	s := NewStore()
	s.AddItem(legging(), "S", "Violet")
	key := s.Items()[0].Key()

	s.UpdateQuantity(key, 0)

	assert.Equal(t, 0, s.Len())
	assert.Zero(t, s.TotalItems())
	assert.Zero(t, s.TotalPrice())
}

func TestUpdateQuantityUnknownKeyIsNoOp(t *testing.T) {
	s := NewStore()
	s.AddItem(legging(), "S", "Violet")

	s.UpdateQuantity(LineKey{ProductID: "missing", Size: "M", Color: "Noir"}, 3)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestRemoveItemUnknownKeyIsNoOp(t *testing.T) {
	s := NewStore()
	s.AddItem(tshirt(), "M", "Noir")

	s.RemoveItem(LineKey{ProductID: "nope", Size: "M", Color: "Noir"})

	assert.Equal(t, 1, s.Len())
}

func TestRemoveItemKeepsOtherLines(t *testing.T) {
	s := NewStore()
	s.AddItem(tshirt(), "M", "Noir")
	s.AddItem(legging(), "S", "Violet")

	s.RemoveItem(LineKey{ProductID: "1", Size: "M", Color: "Noir"})

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "2", s.Items()[0].Product.ID)
}

func TestClearEmptiesCartButKeepsOpenFlag(t *testing.T) {
	s := NewStore()
	s.AddItem(tshirt(), "M", "Noir")
	s.Open()

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.True(t, s.IsOpen())
}

func TestOpenClose(t *testing.T) {
	s := NewStore()
	assert.False(t, s.IsOpen())

	s.Open()
	assert.True(t, s.IsOpen())

	s.Close()
	assert.False(t, s.IsOpen())
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddItem(tshirt(), "M", "Noir")

	items := s.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, s.Items()[0].Quantity)
}
