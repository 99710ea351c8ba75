package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/checkout/quote JSON {"coupon"} (200 OK, 400 Bad request)
// POST v1/checkout JSON full submission (201 Created, 401, 422)

type CheckoutHandler struct {
	checkout port.CheckoutOrchestrator
}

func RegisterCheckout(
	mux *http.ServeMux,
	checkout port.CheckoutOrchestrator,
	session port.SessionReader,
) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout/quote", h.Quote)
	mux.HandleFunc("POST /v1/checkout/shipping", h.ValidateShipping)
	mux.HandleFunc("POST /v1/checkout", RequireAuth(session, h.Submit))
}

func (h CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Coupon string `json:"coupon"`
	}
	if r.ContentLength > 0 && !decodeJSON(w, r, &body) {
		return
	}

	q, err := h.checkout.Quote(body.Coupon)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuote(q))
}

// ValidateShipping lets the presentation layer gate the step
// transition before it shows the payment form.
func (h CheckoutHandler) ValidateShipping(w http.ResponseWriter, r *http.Request) {
	var f ShippingForm
	if !decodeJSON(w, r, &f) {
		return
	}
	if fe := h.checkout.ValidateShipping(f.toDomain()); fe != nil {
		writeError(w, fe)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.Submit"
	log := slog.With("op", op)

	var body struct {
		Shipping ShippingForm `json:"shipping"`
		Payment  PaymentForm  `json:"payment"`
		Coupon   string       `json:"coupon"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	req := domain.CheckoutRequest{
		Shipping: body.Shipping.toDomain(),
		Payment:  body.Payment.toDomain(),
		Coupon:   body.Coupon,
	}

	order, err := h.checkout.Submit(r.Context(), req)
	if err != nil {
		log.Warn("checkout rejected", "err", err)
		writeError(w, err)
		return
	}

	log.Info("order placed", "number", order.Number)
	writeJSON(w, http.StatusCreated, toOrder(order))
}

type (
	ShippingForm struct {
		FullName string `json:"fullName"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		ZipCode  string `json:"zipCode"`
		Country  string `json:"country"`
		Phone    string `json:"phone"`
	}

	PaymentForm struct {
		Method     string `json:"method"`
		CardName   string `json:"cardName"`
		CardNumber string `json:"cardNumber"`
		CardExpiry string `json:"cardExpiry"`
		CardCvv    string `json:"cardCvv"`
	}
)

func (f ShippingForm) toDomain() domain.ShippingForm {
	return domain.ShippingForm(f)
}

func (f PaymentForm) toDomain() domain.PaymentForm {
	return domain.PaymentForm{
		Method: f.Method,
		Card: domain.CardForm{
			Name:   f.CardName,
			Number: f.CardNumber,
			Expiry: f.CardExpiry,
			CVV:    f.CardCvv,
		},
	}
}
