package domain

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCanceled   OrderStatus = "Canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

type (
	// Order is frozen at checkout time except for Status.
	Order struct {
		ID              int
		Number          string
		UserID          int
		Products        []OrderLine
		Total           float64
		Status          OrderStatus
		Date            string
		ShippingAddress ShippingAddress
		PaymentMethod   string
	}

	// OrderLine keeps the price at purchase time, not the live
	// catalog price.
	OrderLine struct {
		ProductID int
		Quantity  int
		Price     float64
	}

	ShippingAddress struct {
		Name    string
		Street  string
		City    string
		State   string
		ZipCode string
		Country string
	}
)

// ProductSales is a dashboard aggregate: revenue per product across
// all placed orders.
type ProductSales struct {
	ProductID  int
	Quantity   int
	TotalSales float64
}
