package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Snapshot is the persisted key/value mirror behind every store.
// Values are written whole on each mutation, last write wins.
type Snapshot interface {
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
	Delete(key string) error
}

type CatalogReader interface {
	ProductByID(id int) (domain.Product, bool)
	Products() []domain.Product
}

type SessionReader interface {
	Current() (domain.User, bool)
	IsAuthenticated() bool
	IsAdmin() bool
}

type CartAdder interface {
	Add(productID, quantity int) error
}

type CartCheckout interface {
	Products() []domain.CartProduct
	Clear() error
}

type OrderAppender interface {
	Append(domain.Order) error
	Has(id int) bool
}

// The store contracts below are the sole mutation surface exposed to
// the presentation layer. Writes never bypass them, so the persisted
// mirror stays consistent.

type CatalogStore interface {
	CatalogReader
	Categories() []domain.Category
	ByCategory(category string) []domain.Product
	Search(query string) []domain.Product
	Sort(ps []domain.Product, key domain.SortKey) []domain.Product
	Filter(f domain.ProductFilter) []domain.Product
	Featured(n int) []domain.Product
	Create(p domain.Product) domain.Product
	Update(id int, patch domain.ProductPatch) (domain.Product, error)
	Delete(id int) error
}

type AuthStore interface {
	SessionReader
	Login(ctx context.Context, username, password string) (domain.User, error)
	Logout() error
	UpdateProfile(patch domain.UserPatch) (domain.User, error)
	Users() []domain.User
	SearchUsers(query string) []domain.User
	DeleteUser(id int) error
	CustomerCount() int
}

type CartStore interface {
	CartAdder
	CartCheckout
	Remove(productID int) error
	SetQuantity(productID, quantity int) error
	Total() float64
	Count() int
}

type WishlistStore interface {
	Add(productID int) error
	Remove(productID int) error
	Has(productID int) bool
	Clear() error
	Products() []domain.Product
	MoveToCart(productID int) error
}

type CheckoutOrchestrator interface {
	ValidateShipping(f domain.ShippingForm) domain.FieldErrors
	ValidatePayment(f domain.PaymentForm) domain.FieldErrors
	Quote(coupon string) (domain.Quote, error)
	Submit(ctx context.Context, req domain.CheckoutRequest) (domain.Order, error)
}

type OrderStore interface {
	OrderAppender
	ByID(id int) (domain.Order, bool)
	ListByUser(userID int) []domain.Order
	ListAll() []domain.Order
	Find(query string, status domain.OrderStatus) []domain.Order
	UpdateStatus(id int, status domain.OrderStatus) error
	TotalRevenue() float64
	Count() int
	TopProducts(n int) []domain.ProductSales
}
