package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogStore = (*Catalog)(nil)

// Catalog holds the product and category reference data. Categories
// are immutable; products mutate only through the admin CRUD.
type Catalog struct {
	mu         sync.Mutex
	products   []domain.Product
	categories []domain.Category
}

func NewCatalog(
	products []domain.Product, categories []domain.Category,
) *Catalog {
	return &Catalog{
		products:   append([]domain.Product(nil), products...),
		categories: append([]domain.Category(nil), categories...),
	}
}

func (c *Catalog) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Product(nil), c.products...)
}

func (c *Catalog) Categories() []domain.Category {
	return append([]domain.Category(nil), c.categories...)
}

func (c *Catalog) ProductByID(id int) (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ByCategory returns products in the named category. "all" or the
// empty string means no filtering, comparison is case-insensitive.
func (c *Catalog) ByCategory(category string) []domain.Product {
	ps := c.Products()
	if category == "" || strings.EqualFold(category, "all") {
		return ps
	}
	var out []domain.Product
	for _, p := range ps {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query as a case-insensitive substring of the
// title, description or category.
func (c *Catalog) Search(query string) []domain.Product {
	ps := c.Products()
	if query == "" {
		return ps
	}
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a new ordering, the input slice is left untouched.
// Unknown keys and "featured" keep the incoming order.
func (c *Catalog) Sort(
	ps []domain.Product, key domain.SortKey,
) []domain.Product {
	out := append([]domain.Product(nil), ps...)
	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case domain.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case domain.SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	case domain.SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title > out[j].Title
		})
	}
	return out
}

// Filter applies the criteria conjunctively.
func (c *Catalog) Filter(f domain.ProductFilter) []domain.Product {
	var out []domain.Product
	for _, p := range c.Products() {
		if f.Category != "" && !strings.EqualFold(f.Category, "all") &&
			!strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the top n products by rating, recomputed on every
// call.
func (c *Catalog) Featured(n int) []domain.Product {
	out := c.Sort(c.Products(), domain.SortRating)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Create assigns max(existing)+1 as the new product id.
func (c *Catalog) Create(p domain.Product) domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	maxID := 0
	for _, v := range c.products {
		if v.ID > maxID {
			maxID = v.ID
		}
	}
	p.ID = maxID + 1
	c.products = append(c.products, p)
	return p
}

// Update shallow-merges the patch into the stored product.
func (c *Catalog) Update(
	id int, patch domain.ProductPatch,
) (domain.Product, error) {
	const op = "Catalog.Update"

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID != id {
			continue
		}
		applyProductPatch(&p, patch)
		c.products[i] = p
		return p, nil
	}
	return domain.Product{}, fmt.Errorf("%s: product %d: %w",
		op, id, domain.ErrNotFound)
}

// Delete removes the product. References from carts and orders are
// left dangling on purpose, enrichment drops them silently.
func (c *Catalog) Delete(id int) error {
	const op = "Catalog.Delete"

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, p := range c.products {
		if p.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: product %d: %w", op, id, domain.ErrNotFound)
}

func applyProductPatch(p *domain.Product, patch domain.ProductPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = *patch.OriginalPrice
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = patch.Reviews
	}
	if patch.Features != nil {
		p.Features = patch.Features
	}
	if patch.Colors != nil {
		p.Colors = patch.Colors
	}
}
