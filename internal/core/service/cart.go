package service

import (
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const cartKey = "cart"

var _ port.CartStore = (*Cart)(nil)

// Cart is the productID->quantity ledger. The in-memory lines are the
// source of truth, the snapshot store is a write-through mirror.
type Cart struct {
	mu      sync.Mutex
	repo    port.Snapshot
	catalog port.CatalogReader
	lines   []domain.CartLine
}

func NewCart(repo port.Snapshot, catalog port.CatalogReader) *Cart {
	return &Cart{repo: repo, catalog: catalog}
}

// Load reads the persisted ledger. A missing or unparseable snapshot
// leaves the cart empty.
func (c *Cart) Load() error {
	const op = "Cart.Load"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.repo.Load(cartKey, &c.lines); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Add increments the quantity of an existing line or inserts a new
// one. Quantities below one count as one.
func (c *Cart) Add(productID, quantity int) error {
	const op = "Cart.Add"

	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines[i].Quantity += quantity
			return c.save(op)
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ProductID: productID, Quantity: quantity,
	})
	return c.save(op)
}

func (c *Cart) Remove(productID int) error {
	const op = "Cart.Remove"

	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLine(productID)
	return c.save(op)
}

// SetQuantity overwrites the line quantity. Zero or below removes the
// line.
func (c *Cart) SetQuantity(productID, quantity int) error {
	const op = "Cart.SetQuantity"

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLine(productID)
		return c.save(op)
	}
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	return c.save(op)
}

func (c *Cart) Clear() error {
	const op = "Cart.Clear"

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	return c.save(op)
}

func (c *Cart) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CartLine(nil), c.lines...)
}

func (c *Cart) Has(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

// Products joins the ledger against the current catalog snapshot.
// Lines whose product no longer resolves are dropped without error.
func (c *Cart) Products() []domain.CartProduct {
	var out []domain.CartProduct
	for _, l := range c.Lines() {
		p, ok := c.catalog.ProductByID(l.ProductID)
		if !ok {
			continue
		}
		out = append(out, domain.CartProduct{
			ProductID:   p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Image:       p.Image,
			Quantity:    l.Quantity,
		})
	}
	return out
}

// Total sums price*quantity over the enriched lines using the current
// catalog price. A later price change moves the cart total with it.
func (c *Cart) Total() float64 {
	var total float64
	for _, p := range c.Products() {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// Count sums the quantities of lines that still resolve in the
// catalog.
func (c *Cart) Count() int {
	var count int
	for _, p := range c.Products() {
		count += p.Quantity
	}
	return count
}

func (c *Cart) removeLine(productID int) {
	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) save(op string) error {
	if err := c.repo.Save(cartKey, c.lines); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
