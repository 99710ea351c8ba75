package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWishlist(t *testing.T) (*service.Wishlist, *service.Cart, *service.Catalog) {
	t.Helper()
	kv := storage.OpenMemory()
	catalog := service.NewCatalog(testProducts(), nil)
	cart := service.NewCart(kv, catalog)
	wishlist := service.NewWishlist(kv, catalog, cart)
	require.NoError(t, cart.Load())
	require.NoError(t, wishlist.Load())
	return wishlist, cart, catalog
}

func TestWishlistAdd(t *testing.T) {
	t.Run("Membership", func(t *testing.T) {
		w, _, _ := newTestWishlist(t)
		require.NoError(t, w.Add(1))
		assert.True(t, w.Has(1))
		assert.False(t, w.Has(2))
	})

	t.Run("Idempotent", func(t *testing.T) {
		w, _, _ := newTestWishlist(t)
		require.NoError(t, w.Add(1))
		require.NoError(t, w.Add(1))
		assert.Equal(t, []int{1}, w.IDs())
	})
}

func TestWishlistRemove(t *testing.T) {
	w, _, _ := newTestWishlist(t)
	require.NoError(t, w.Add(1))
	require.NoError(t, w.Remove(1))
	assert.False(t, w.Has(1))

	// removing an absent id is not an error
	require.NoError(t, w.Remove(1))
}

func TestWishlistClear(t *testing.T) {
	w, _, _ := newTestWishlist(t)
	require.NoError(t, w.Add(1))
	require.NoError(t, w.Add(2))
	require.NoError(t, w.Clear())
	assert.Empty(t, w.IDs())
}

func TestWishlistProducts(t *testing.T) {
	w, _, catalog := newTestWishlist(t)
	require.NoError(t, w.Add(1))
	require.NoError(t, w.Add(2))

	require.NoError(t, catalog.Delete(1))

	ps := w.Products()
	require.Len(t, ps, 1)
	assert.Equal(t, 2, ps[0].ID)
	// the id itself stays in the set
	assert.True(t, w.Has(1))
}

func TestWishlistMoveToCart(t *testing.T) {
	w, cart, _ := newTestWishlist(t)
	require.NoError(t, w.Add(3))
	require.NoError(t, w.MoveToCart(3))

	assert.False(t, w.Has(3))
	assert.True(t, cart.Has(3))
	assert.Equal(t, 1, cart.Count())
}
