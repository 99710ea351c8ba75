package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/orders (200 OK, 401 Unauthorized) — current user's history
// GET v1/orders/{id} (200 OK, 404 Not found)
// GET v1/admin/orders?status=&q= (200 OK, 403 Forbidden)
// PUT v1/admin/orders/{id}/status JSON {"status"} (200 OK, 400, 404)
// GET v1/admin/users?q= / DELETE v1/admin/users/{id}
// GET v1/admin/stats (200 OK, 403 Forbidden)

type OrdersHandler struct {
	orders  port.OrderStore
	auth    port.AuthStore
	session port.SessionReader
}

func RegisterOrders(
	mux *http.ServeMux, orders port.OrderStore, auth port.AuthStore,
) {
	h := OrdersHandler{orders: orders, auth: auth, session: auth}
	mux.HandleFunc("GET /v1/orders", RequireAuth(auth, h.ListMine))
	mux.HandleFunc("GET /v1/orders/{id}", RequireAuth(auth, h.GetOrder))

	mux.HandleFunc("GET /v1/admin/orders", RequireAdmin(auth, h.AdminList))
	mux.HandleFunc("PUT /v1/admin/orders/{id}/status",
		RequireAdmin(auth, h.UpdateStatus))
	mux.HandleFunc("GET /v1/admin/users", RequireAdmin(auth, h.AdminUsers))
	mux.HandleFunc("DELETE /v1/admin/users/{id}",
		RequireAdmin(auth, h.DeleteUser))
	mux.HandleFunc("GET /v1/admin/stats", RequireAdmin(auth, h.Stats))
}

func (h OrdersHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	u, _ := h.session.Current()
	writeJSON(w, http.StatusOK, toOrders(h.orders.ListByUser(u.ID)))
}

// GetOrder returns the order only to its owner or to an admin.
func (h OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, found := h.orders.ByID(id)
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	u, _ := h.session.Current()
	if order.UserID != u.ID && !h.session.IsAdmin() {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toOrder(order))
}

func (h OrdersHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders := h.orders.Find(
		q.Get("q"), domain.OrderStatus(q.Get("status")),
	)
	writeJSON(w, http.StatusOK, toOrders(orders))
}

func (h OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.UpdateStatus"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	err := h.orders.UpdateStatus(id, domain.OrderStatus(body.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	log.Info("order status updated", "id", id, "status", body.Status)
	order, _ := h.orders.ByID(id)
	writeJSON(w, http.StatusOK, toOrder(order))
}

func (h OrdersHandler) AdminUsers(w http.ResponseWriter, r *http.Request) {
	users := h.auth.SearchUsers(r.URL.Query().Get("q"))
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h OrdersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.auth.DeleteUser(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats feeds the admin dashboard. Everything is recomputed from the
// order list on each call.
func (h OrdersHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const topCount = 5

	sales := h.orders.TopProducts(topCount)
	top := make([]ProductSales, 0, len(sales))
	for _, s := range sales {
		top = append(top, ProductSales(s))
	}

	resp := struct {
		TotalRevenue float64        `json:"totalRevenue"`
		TotalOrders  int            `json:"totalOrders"`
		Customers    int            `json:"customers"`
		TopProducts  []ProductSales `json:"topProducts"`
	}{
		TotalRevenue: h.orders.TotalRevenue(),
		TotalOrders:  h.orders.Count(),
		Customers:    h.auth.CustomerCount(),
		TopProducts:  top,
	}
	writeJSON(w, http.StatusOK, resp)
}
