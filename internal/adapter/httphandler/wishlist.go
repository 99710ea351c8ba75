package httphandler

import (
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/wishlist (200 OK)
// POST v1/wishlist/items JSON {"productId"} (200 OK)
// DELETE v1/wishlist/items/{id} (200 OK)
// POST v1/wishlist/items/{id}/move-to-cart (200 OK)
// DELETE v1/wishlist (200 OK)

type WishlistHandler struct {
	wishlist port.WishlistStore
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistStore) {
	h := WishlistHandler{wishlist}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/items", h.AddItem)
	mux.HandleFunc("DELETE /v1/wishlist/items/{id}", h.RemoveItem)
	mux.HandleFunc("POST /v1/wishlist/items/{id}/move-to-cart", h.MoveToCart)
	mux.HandleFunc("DELETE /v1/wishlist", h.ClearWishlist)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	h.writeWishlist(w)
}

func (h WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var item struct {
		ProductID int `json:"productId"`
	}
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := h.wishlist.Add(item.ProductID); err != nil {
		writeError(w, err)
		return
	}
	h.writeWishlist(w)
}

func (h WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.wishlist.Remove(id); err != nil {
		writeError(w, err)
		return
	}
	h.writeWishlist(w)
}

func (h WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.wishlist.MoveToCart(id); err != nil {
		writeError(w, err)
		return
	}
	h.writeWishlist(w)
}

func (h WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlist.Clear(); err != nil {
		writeError(w, err)
		return
	}
	h.writeWishlist(w)
}

func (h WishlistHandler) writeWishlist(w http.ResponseWriter) {
	resp := struct {
		Products []Product `json:"products"`
	}{
		Products: toProducts(h.wishlist.Products()),
	}
	writeJSON(w, http.StatusOK, resp)
}
