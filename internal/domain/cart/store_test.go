package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []LineItem {
	return []LineItem{
		{ID: "line-1", Product: ProductRef{ProductID: "p-1", Price: 1000, Stock: 5}, Quantity: 1},
		{ID: "line-2", Product: ProductRef{ProductID: "p-2", Price: 2000, Stock: 3}, Quantity: 2},
		{ID: "line-3", Product: ProductRef{ProductID: "p-3", Price: 3000, Stock: 9}, Quantity: 3},
	}
}

func TestStore_Replace(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())
	assert.Equal(t, 3, store.Len())

	// Wholesale replace: no merge with previous contents
	store.Replace([]LineItem{{ID: "line-9", Quantity: 1}})
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get("line-1")
	assert.False(t, ok)
}

func TestStore_ReplaceCopiesInput(t *testing.T) {
	items := sampleItems()
	store := NewStore()
	store.Replace(items)

	items[0].Quantity = 99
	got, ok := store.Get("line-1")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.Quantity)
}

func TestStore_ItemsPreservesOrder(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())

	items := store.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "line-1", items[0].ID)
	assert.Equal(t, "line-2", items[1].ID)
	assert.Equal(t, "line-3", items[2].ID)
}

func TestStore_Get(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())

	item, ok := store.Get("line-2")
	require.True(t, ok)
	assert.Equal(t, "p-2", item.Product.ProductID)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_FindByProduct(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())

	item, ok := store.FindByProduct("p-3")
	require.True(t, ok)
	assert.Equal(t, "line-3", item.ID)

	_, ok = store.FindByProduct("p-404")
	assert.False(t, ok)
}

func TestStore_RemoveByID(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())

	store.RemoveByID("line-2")

	assert.Equal(t, 2, store.Len())
	_, ok := store.Get("line-2")
	assert.False(t, ok)
	assert.Equal(t, []string{"line-1", "line-3"}, store.IDs())
}

func TestStore_RemoveByIDs(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())

	store.RemoveByIDs([]string{"line-1", "line-3", "missing"})

	assert.Equal(t, []string{"line-2"}, store.IDs())
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()
	store.Replace(sampleItems())

	store.Clear()

	assert.Zero(t, store.Len())
	assert.Empty(t, store.Items())
}

func TestOrderStore_ReplaceAndClear(t *testing.T) {
	store := NewOrderStore()
	store.Replace([]Order{{ID: "o-1"}, {ID: "o-2"}})
	assert.Len(t, store.Orders(), 2)

	store.Replace([]Order{{ID: "o-3"}})
	orders := store.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, "o-3", orders[0].ID)

	store.Clear()
	assert.Empty(t, store.Orders())
}
