package service

import (
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const wishlistKey = "wishlist"

var _ port.WishlistStore = (*Wishlist)(nil)

// Wishlist is an ordered set of product ids.
type Wishlist struct {
	mu      sync.Mutex
	repo    port.Snapshot
	catalog port.CatalogReader
	cart    port.CartAdder
	ids     []int
}

func NewWishlist(
	repo port.Snapshot, catalog port.CatalogReader, cart port.CartAdder,
) *Wishlist {
	return &Wishlist{repo: repo, catalog: catalog, cart: cart}
}

func (w *Wishlist) Load() error {
	const op = "Wishlist.Load"

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.repo.Load(wishlistKey, &w.ids); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Add is idempotent, a present id is left in place.
func (w *Wishlist) Add(productID int) error {
	const op = "Wishlist.Add"

	w.mu.Lock()
	defer w.mu.Unlock()

	if slices.Contains(w.ids, productID) {
		return nil
	}
	w.ids = append(w.ids, productID)
	return w.save(op)
}

// Remove is idempotent, a missing id is not an error.
func (w *Wishlist) Remove(productID int) error {
	const op = "Wishlist.Remove"

	w.mu.Lock()
	defer w.mu.Unlock()

	i := slices.Index(w.ids, productID)
	if i < 0 {
		return nil
	}
	w.ids = slices.Delete(w.ids, i, i+1)
	return w.save(op)
}

func (w *Wishlist) Has(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.ids, productID)
}

func (w *Wishlist) Clear() error {
	const op = "Wishlist.Clear"

	w.mu.Lock()
	defer w.mu.Unlock()

	w.ids = nil
	return w.save(op)
}

func (w *Wishlist) IDs() []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]int(nil), w.ids...)
}

// Products resolves the set against the catalog, dropping ids of
// deleted products silently.
func (w *Wishlist) Products() []domain.Product {
	var out []domain.Product
	for _, id := range w.IDs() {
		if p, ok := w.catalog.ProductByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// MoveToCart adds the product to the cart with quantity one and
// removes it from the wishlist.
func (w *Wishlist) MoveToCart(productID int) error {
	const op = "Wishlist.MoveToCart"

	if err := w.cart.Add(productID, 1); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := w.Remove(productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (w *Wishlist) save(op string) error {
	if err := w.repo.Save(wishlistKey, w.ids); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
