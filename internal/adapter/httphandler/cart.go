package httphandler

import (
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"productId","quantity"} (200 OK)
// PUT v1/cart/items/{id} JSON {"quantity"} (200 OK)
// DELETE v1/cart/items/{id} (200 OK)
// DELETE v1/cart (200 OK)

type CartHandler struct {
	cart port.CartStore
}

func RegisterCart(mux *http.ServeMux, cart port.CartStore) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.SetQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w)
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if !decodeJSON(w, r, &item) {
		return
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if err := h.cart.Add(item.ProductID, item.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.cart.SetQuantity(id, body.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.cart.Remove(id); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w)
}

func (h CartHandler) writeCart(w http.ResponseWriter) {
	resp := struct {
		Products []CartProduct `json:"products"`
		Total    float64       `json:"total"`
		Count    int           `json:"count"`
	}{
		Products: toCartProducts(h.cart.Products()),
		Total:    h.cart.Total(),
		Count:    h.cart.Count(),
	}
	writeJSON(w, http.StatusOK, resp)
}
