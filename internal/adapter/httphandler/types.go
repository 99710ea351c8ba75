package httphandler

import (
	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	Product struct {
		ID            int             `json:"id"`
		Title         string          `json:"title"`
		Description   string          `json:"description"`
		Price         float64         `json:"price"`
		OriginalPrice float64         `json:"originalPrice,omitempty"`
		Category      string          `json:"category"`
		Image         string          `json:"image"`
		Stock         int             `json:"stock"`
		Rating        float64         `json:"rating"`
		Reviews       []ProductReview `json:"reviews,omitempty"`
		Features      []string        `json:"features,omitempty"`
		Colors        []string        `json:"colors,omitempty"`
	}

	ProductReview struct {
		UserID  int     `json:"userId"`
		Comment string  `json:"comment"`
		Rating  float64 `json:"rating"`
	}

	Category struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Icon string `json:"icon"`
	}

	User struct {
		ID       int      `json:"id"`
		Username string   `json:"username"`
		Email    string   `json:"email"`
		Role     string   `json:"role"`
		Name     string   `json:"name"`
		Address  *Address `json:"address,omitempty"`
		Phone    string   `json:"phone,omitempty"`
	}

	Address struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zipCode"`
		Country string `json:"country"`
	}

	CartProduct struct {
		ProductID   int     `json:"productId"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		Image       string  `json:"image"`
		Quantity    int     `json:"quantity"`
	}

	Order struct {
		ID              int             `json:"id"`
		Number          string          `json:"number"`
		UserID          int             `json:"userId"`
		Products        []OrderLine     `json:"products"`
		Total           float64         `json:"total"`
		Status          string          `json:"status"`
		Date            string          `json:"date"`
		ShippingAddress ShippingAddress `json:"shippingAddress"`
		PaymentMethod   string          `json:"paymentMethod"`
	}

	OrderLine struct {
		ProductID int     `json:"productId"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	}

	ShippingAddress struct {
		Name    string `json:"name"`
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		ZipCode string `json:"zipCode"`
		Country string `json:"country"`
	}

	ProductSales struct {
		ProductID  int     `json:"productId"`
		Quantity   int     `json:"quantity"`
		TotalSales float64 `json:"totalSales"`
	}

	Quote struct {
		Subtotal float64 `json:"subtotal"`
		Shipping float64 `json:"shipping"`
		Tax      float64 `json:"tax"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}
)

func toProduct(p domain.Product) Product {
	out := Product{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Image:         p.Image,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Features:      p.Features,
		Colors:        p.Colors,
	}
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, ProductReview(r))
	}
	return out
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func (p Product) toDomain() domain.Product {
	out := domain.Product{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Image:         p.Image,
		Stock:         p.Stock,
		Rating:        p.Rating,
		Features:      p.Features,
		Colors:        p.Colors,
	}
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, domain.ProductReview(r))
	}
	return out
}

func toUser(u domain.User) User {
	out := User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Name,
		Phone:    u.Phone,
	}
	if u.Address != nil {
		addr := Address(*u.Address)
		out.Address = &addr
	}
	return out
}

func toCartProducts(ps []domain.CartProduct) []CartProduct {
	out := make([]CartProduct, 0, len(ps))
	for _, p := range ps {
		out = append(out, CartProduct(p))
	}
	return out
}

func toOrder(o domain.Order) Order {
	out := Order{
		ID:              o.ID,
		Number:          o.Number,
		UserID:          o.UserID,
		Total:           o.Total,
		Status:          string(o.Status),
		Date:            o.Date,
		ShippingAddress: ShippingAddress(o.ShippingAddress),
		PaymentMethod:   o.PaymentMethod,
	}
	for _, l := range o.Products {
		out.Products = append(out.Products, OrderLine(l))
	}
	return out
}

func toOrders(os []domain.Order) []Order {
	out := make([]Order, 0, len(os))
	for _, o := range os {
		out = append(out, toOrder(o))
	}
	return out
}

func toQuote(q domain.Quote) Quote {
	return Quote(q)
}
