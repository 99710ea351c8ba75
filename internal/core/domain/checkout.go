package domain

const (
	PaymentCreditCard = "credit-card"
	PaymentPayPal     = "paypal"
)

type (
	// ShippingForm gates the shipping step of the checkout. All
	// fields must pass for the transition to the payment step.
	ShippingForm struct {
		FullName string `validate:"min=3"`
		Address  string `validate:"min=5"`
		City     string `validate:"min=2"`
		State    string `validate:"min=2"`
		ZipCode  string `validate:"min=5"`
		Country  string `validate:"min=2"`
		Phone    string `validate:"min=10"`
	}

	// CardForm is required on the credit-card branch only. The
	// PayPal branch carries no extra fields.
	CardForm struct {
		Name   string `validate:"min=3"`
		Number string `validate:"len=16,numeric"`
		Expiry string `validate:"len=5,datetime=01/06"`
		CVV    string `validate:"min=3,max=4,numeric"`
	}

	PaymentForm struct {
		Method string
		Card   CardForm
	}

	// CheckoutRequest is the full submission: both form steps plus an
	// optional coupon code.
	CheckoutRequest struct {
		Shipping ShippingForm
		Payment  PaymentForm
		Coupon   string
	}

	// Quote is the order-summary breakdown. The discount lives only
	// here, the stored order keeps just the final total.
	Quote struct {
		Subtotal float64
		Shipping float64
		Tax      float64
		Discount float64
		Total    float64
	}
)
