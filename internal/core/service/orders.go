package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const ordersKey = "orders"

var _ port.OrderStore = (*Orders)(nil)

// Orders is the append-only order list. Records are frozen at
// creation except for the status field.
type Orders struct {
	mu     sync.Mutex
	repo   port.Snapshot
	orders []domain.Order
}

func NewOrders(repo port.Snapshot) *Orders {
	return &Orders{repo: repo}
}

func (o *Orders) Load() error {
	const op = "Orders.Load"

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.repo.Load(ordersKey, &o.orders); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (o *Orders) Append(order domain.Order) error {
	const op = "Orders.Append"

	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = append(o.orders, order)
	if err := o.repo.Save(ordersKey, o.orders); err != nil {
		o.orders = o.orders[:len(o.orders)-1]
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (o *Orders) Has(id int) bool {
	_, ok := o.ByID(id)
	return ok
}

func (o *Orders) ByID(id int) (domain.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ord := range o.orders {
		if ord.ID == id {
			return ord, true
		}
	}
	return domain.Order{}, false
}

// ListByUser returns the user's orders newest first.
func (o *Orders) ListByUser(userID int) []domain.Order {
	var out []domain.Order
	for _, ord := range o.ListAll() {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	sortNewestFirst(out)
	return out
}

func (o *Orders) ListAll() []domain.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]domain.Order(nil), o.orders...)
}

// Find filters the full list for the admin view: an exact status and
// a free-text query over number, status and customer name.
func (o *Orders) Find(query string, status domain.OrderStatus) []domain.Order {
	out := o.ListAll()
	if status != "" {
		filtered := out[:0]
		for _, ord := range out {
			if ord.Status == status {
				filtered = append(filtered, ord)
			}
		}
		out = filtered
	}
	if query != "" {
		q := strings.ToLower(query)
		filtered := out[:0]
		for _, ord := range out {
			if strings.Contains(strings.ToLower(ord.Number), q) ||
				strings.Contains(strings.ToLower(string(ord.Status)), q) ||
				strings.Contains(
					strings.ToLower(ord.ShippingAddress.Name), q) ||
				strings.Contains(strconv.Itoa(ord.ID), q) {
				filtered = append(filtered, ord)
			}
		}
		out = filtered
	}
	sortNewestFirst(out)
	return out
}

// UpdateStatus overwrites the status unconditionally: any known
// status may follow any other, there is no transition graph. Unknown
// status strings are rejected.
func (o *Orders) UpdateStatus(id int, status domain.OrderStatus) error {
	const op = "Orders.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %q: %w", op, status, domain.ErrInvalidStatus)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for i, ord := range o.orders {
		if ord.ID != id {
			continue
		}
		o.orders[i].Status = status
		if err := o.repo.Save(ordersKey, o.orders); err != nil {
			o.orders[i].Status = ord.Status
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}
	return fmt.Errorf("%s: order %d: %w", op, id, domain.ErrNotFound)
}

// TotalRevenue sums the frozen totals of all orders.
func (o *Orders) TotalRevenue() float64 {
	var total float64
	for _, ord := range o.ListAll() {
		total += ord.Total
	}
	return total
}

func (o *Orders) Count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.orders)
}

// TopProducts aggregates per-product revenue across all orders and
// returns the n best sellers, recomputed from scratch on every call.
func (o *Orders) TopProducts(n int) []domain.ProductSales {
	byProduct := make(map[int]*domain.ProductSales)
	for _, ord := range o.ListAll() {
		for _, l := range ord.Products {
			s, ok := byProduct[l.ProductID]
			if !ok {
				s = &domain.ProductSales{ProductID: l.ProductID}
				byProduct[l.ProductID] = s
			}
			s.Quantity += l.Quantity
			s.TotalSales += l.Price * float64(l.Quantity)
		}
	}

	out := make([]domain.ProductSales, 0, len(byProduct))
	for _, s := range byProduct {
		out = append(out, *s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSales > out[j].TotalSales
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].Date != orders[j].Date {
			return orders[i].Date > orders[j].Date
		}
		return orders[i].ID > orders[j].ID
	})
}
