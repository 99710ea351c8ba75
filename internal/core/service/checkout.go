package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const (
	freeShippingOver = 50.0
	flatShipping     = 10.0
	taxRate          = 0.08

	couponFreeShip   = "FREESHIP50"
	couponDiscount10 = "DISCOUNT10"
)

var _ port.CheckoutOrchestrator = (*Checkout)(nil)

// Checkout sequences the two-step form and synthesizes the order
// record. It is the only component reading from three stores and
// writing to a fourth.
type Checkout struct {
	session  port.SessionReader
	cart     port.CartCheckout
	orders   port.OrderAppender
	validate *validator.Validate
	latency  time.Duration
}

func NewCheckout(
	session port.SessionReader,
	cart port.CartCheckout,
	orders port.OrderAppender,
	latency time.Duration,
) *Checkout {
	return &Checkout{
		session:  session,
		cart:     cart,
		orders:   orders,
		validate: validator.New(),
		latency:  latency,
	}
}

// ValidateShipping gates the shipping-to-payment transition. Any
// failing field blocks it.
func (c *Checkout) ValidateShipping(f domain.ShippingForm) domain.FieldErrors {
	return c.fieldErrors(f)
}

// ValidatePayment branches on the payment method: the credit-card
// branch validates the card, PayPal needs nothing further.
func (c *Checkout) ValidatePayment(f domain.PaymentForm) domain.FieldErrors {
	switch f.Method {
	case domain.PaymentPayPal:
		return nil
	case domain.PaymentCreditCard:
		return c.fieldErrors(f.Card)
	default:
		return domain.FieldErrors{"Method": "unknown payment method"}
	}
}

// Quote computes the order-summary breakdown for the current cart.
// An empty coupon means no discount, any unknown code is rejected.
func (c *Checkout) Quote(coupon string) (domain.Quote, error) {
	const op = "Checkout.Quote"

	q := c.priceCart()

	switch strings.ToUpper(coupon) {
	case "":
	case couponFreeShip:
		if q.Subtotal < freeShippingOver {
			return domain.Quote{}, fmt.Errorf("%s: %q: %w",
				op, coupon, domain.ErrInvalidCoupon)
		}
		q.Discount = q.Shipping
	case couponDiscount10:
		q.Discount = q.Subtotal * 0.1
	default:
		return domain.Quote{}, fmt.Errorf("%s: %q: %w",
			op, coupon, domain.ErrInvalidCoupon)
	}

	q.Total -= q.Discount
	return q, nil
}

// Submit re-validates everything, prices the cart, appends the order
// and clears the cart. On any failure before the append neither store
// is touched.
func (c *Checkout) Submit(
	ctx context.Context, req domain.CheckoutRequest,
) (domain.Order, error) {
	const op = "Checkout.Submit"
	log := slog.With("op", op)

	user, ok := c.session.Current()
	if !ok {
		return domain.Order{}, fmt.Errorf("%s: %w",
			op, domain.ErrNotAuthenticated)
	}

	if fe := c.ValidateShipping(req.Shipping); fe != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, fe)
	}
	if fe := c.ValidatePayment(req.Payment); fe != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, fe)
	}

	products := c.cart.Products()
	if len(products) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	quote, err := c.Quote(req.Coupon)
	if err != nil {
		return domain.Order{}, err
	}

	if err := wait(ctx, c.latency); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	id := c.newOrderID()
	lines := make([]domain.OrderLine, 0, len(products))
	for _, p := range products {
		lines = append(lines, domain.OrderLine{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Price:     p.Price,
		})
	}

	order := domain.Order{
		ID:       id,
		Number:   fmt.Sprintf("ORD-%d", id),
		UserID:   user.ID,
		Products: lines,
		Total:    quote.Total,
		Status:   domain.StatusProcessing,
		Date:     time.Now().Format(time.DateOnly),
		ShippingAddress: domain.ShippingAddress{
			Name:    req.Shipping.FullName,
			Street:  req.Shipping.Address,
			City:    req.Shipping.City,
			State:   req.Shipping.State,
			ZipCode: req.Shipping.ZipCode,
			Country: req.Shipping.Country,
		},
		PaymentMethod: paymentDescription(req.Payment),
	}

	if err := c.orders.Append(order); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := c.cart.Clear(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("order placed", "number", order.Number, "total", order.Total)
	return order, nil
}

// priceCart derives subtotal, shipping and tax from the enriched cart
// lines. Shipping is free above the threshold, tax is a flat rate.
func (c *Checkout) priceCart() domain.Quote {
	var subtotal float64
	for _, p := range c.cart.Products() {
		subtotal += p.Price * float64(p.Quantity)
	}

	shipping := flatShipping
	if subtotal > freeShippingOver {
		shipping = 0
	}
	tax := subtotal * taxRate

	return domain.Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// newOrderID draws six-digit order numbers until one is free.
func (c *Checkout) newOrderID() int {
	for {
		id := 100000 + rand.IntN(900000)
		if !c.orders.Has(id) {
			return id
		}
	}
}

func (c *Checkout) fieldErrors(v any) domain.FieldErrors {
	err := c.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.FieldErrors{"form": err.Error()}
	}

	fe := make(domain.FieldErrors, len(verrs))
	for _, ve := range verrs {
		fe[ve.Field()] = fieldMessage(ve)
	}
	return fe
}

func fieldMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", ve.Param())
	case "numeric":
		return "must contain only digits"
	case "datetime":
		return "must match the MM/YY format"
	default:
		return "is invalid"
	}
}

func paymentDescription(f domain.PaymentForm) string {
	if f.Method == domain.PaymentPayPal {
		return "PayPal"
	}
	return fmt.Sprintf("Credit Card (ending in %s)", f.Card.Number[len(f.Card.Number)-4:])
}
