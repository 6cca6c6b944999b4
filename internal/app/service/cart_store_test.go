package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsev/locknlock-bff/internal/app/model"
)

func TestCartStore_AddOrMerge(t *testing.T) {
	t.Run("Success_AddNewItem", func(t *testing.T) {
		store := NewCartStore()

		store.AddOrMerge(model.CartLineItem{ID: "ci-1", Name: "Hộp cơm thủy tinh", UnitPrice: 250000, Quantity: 1})

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, 1, store.ItemCount())
	})

	t.Run("Success_MergeSameItem", func(t *testing.T) {
		store := NewCartStore()

		store.AddOrMerge(model.CartLineItem{ID: "ci-1", UnitPrice: 250000, Quantity: 2})
		store.AddOrMerge(model.CartLineItem{ID: "ci-1", UnitPrice: 250000, Quantity: 3})

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Success_DistinctItemsKeptApart", func(t *testing.T) {
		store := NewCartStore()

		store.AddOrMerge(model.CartLineItem{ID: "ci-1", Quantity: 1})
		store.AddOrMerge(model.CartLineItem{ID: "ci-2", Quantity: 1})

		assert.Len(t, store.Items(), 2)
	})
}

func TestCartStore_SetQuantity(t *testing.T) {
	t.Run("Success_UpdatesQuantity", func(t *testing.T) {
		store := NewCartStore()
		store.AddOrMerge(model.CartLineItem{ID: "ci-1", UnitPrice: 100000, Quantity: 2})

		store.SetQuantity("ci-1", 7)

		assert.Equal(t, 7, store.Items()[0].Quantity)
	})

	t.Run("Ignored_QuantityBelowOne", func(t *testing.T) {
		store := NewCartStore()
		store.AddOrMerge(model.CartLineItem{ID: "ci-1", Quantity: 2})

		store.SetQuantity("ci-1", 0)
		store.SetQuantity("ci-1", -3)

		assert.Equal(t, 2, store.Items()[0].Quantity)
	})

	t.Run("Ignored_UnknownItem", func(t *testing.T) {
		store := NewCartStore()
		store.AddOrMerge(model.CartLineItem{ID: "ci-1", Quantity: 2})

		store.SetQuantity("ci-404", 9)

		assert.Equal(t, 2, store.Items()[0].Quantity)
	})
}

func TestCartStore_Remove(t *testing.T) {
	t.Run("Success_RemovesItem", func(t *testing.T) {
		store := NewCartStore()
		store.AddOrMerge(model.CartLineItem{ID: "ci-1", Quantity: 1})
		store.AddOrMerge(model.CartLineItem{ID: "ci-2", Quantity: 1})

		store.Remove("ci-1")

		items := store.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, "ci-2", items[0].ID)
	})

	t.Run("NoOp_UnknownItem", func(t *testing.T) {
		store := NewCartStore()
		store.AddOrMerge(model.CartLineItem{ID: "ci-1", Quantity: 1})

		store.Remove("ci-404")

		assert.Len(t, store.Items(), 1)
	})
}

func TestCartStore_Totals(t *testing.T) {
	store := NewCartStore()
	store.ReplaceAll([]model.CartLineItem{
		{ID: "ci-1", UnitPrice: 250000, Quantity: 2},
		{ID: "ci-2", UnitPrice: 120000, Quantity: 3},
	})

	assert.Equal(t, 5, store.ItemCount())
	assert.Equal(t, int64(250000*2+120000*3), store.Subtotal())

	view := store.View()
	assert.Equal(t, 5, view.ItemCount)
	assert.Equal(t, int64(860000), view.Subtotal)
	assert.Len(t, view.Items, 2)
}

func TestCartStore_Clear(t *testing.T) {
	store := NewCartStore()
	store.AddOrMerge(model.CartLineItem{ID: "ci-1", UnitPrice: 100000, Quantity: 4})

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.ItemCount())
	assert.Equal(t, int64(0), store.Subtotal())
}

func TestCartStore_ViewReturnsCopy(t *testing.T) {
	store := NewCartStore()
	store.AddOrMerge(model.CartLineItem{ID: "ci-1", UnitPrice: 100000, Quantity: 1})

	view := store.View()
	view.Items[0].Quantity = 99

	assert.Equal(t, 1, store.Items()[0].Quantity)
}
