package httphandler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) (*http.ServeMux, *service.Auth) {
	t.Helper()

	kv := storage.OpenMemory()
	catalog := service.NewCatalog([]domain.Product{
		{ID: 1, Title: "Alpha Headphones", Category: "Electronics",
			Price: 20, Rating: 4.5},
		{ID: 2, Title: "Beta Watch", Category: "Electronics",
			Price: 50, Rating: 4.8},
	}, []domain.Category{{ID: 1, Name: "Electronics", Icon: "laptop"}})

	seed := []domain.SeedUser{
		{
			User: domain.User{
				ID: 1, Username: "admin",
				Role: domain.RoleAdmin, Name: "Admin",
			},
			Password: "password",
		},
		{
			User: domain.User{
				ID: 2, Username: "john",
				Role: domain.RoleUser, Name: "John Doe",
			},
			Password: "password",
		},
	}

	auth := service.NewAuth(kv, seed, 0)
	cart := service.NewCart(kv, catalog)
	wishlist := service.NewWishlist(kv, catalog, cart)
	orders := service.NewOrders(kv)
	checkout := service.NewCheckout(auth, cart, orders, 0)

	require.NoError(t, auth.Load())
	require.NoError(t, cart.Load())
	require.NoError(t, wishlist.Load())
	require.NoError(t, orders.Load())

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, catalog, auth)
	httphandler.RegisterAuth(mux, auth)
	httphandler.RegisterCart(mux, cart)
	httphandler.RegisterWishlist(mux, wishlist)
	httphandler.RegisterCheckout(mux, checkout, auth)
	httphandler.RegisterOrders(mux, orders, auth)

	return mux, auth
}

func doJSON(
	t *testing.T, mux *http.ServeMux, method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestProductsEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	t.Run("List", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/v1/products", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Alpha Headphones")
	})

	t.Run("SortByPriceHigh", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet,
			"/v1/products?sort=price-high", "")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Less(t,
			strings.Index(body, "Beta Watch"),
			strings.Index(body, "Alpha Headphones"),
		)
	})

	t.Run("GetMissing", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/v1/products/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminGating(t *testing.T) {
	mux, auth := newTestMux(t)

	t.Run("AnonymousForbidden", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodDelete, "/v1/products/1", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("PlainUserForbidden", func(t *testing.T) {
		_, err := auth.Login(t.Context(), "john", "password")
		require.NoError(t, err)
		rec := doJSON(t, mux, http.MethodDelete, "/v1/products/1", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NoError(t, auth.Logout())
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		_, err := auth.Login(t.Context(), "admin", "password")
		require.NoError(t, err)
		rec := doJSON(t, mux, http.MethodDelete, "/v1/products/1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCartEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
		`{"productId": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), `"total":40`)

	rec = doJSON(t, mux, http.MethodPut, "/v1/cart/items/1",
		`{"quantity": 0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestLoginEndpoint(t *testing.T) {
	mux, auth := newTestMux(t)

	t.Run("BadCredentials", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/auth/login",
			`{"username": "admin", "password": "nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, auth.IsAuthenticated())
	})

	t.Run("Success", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/auth/login",
			`{"username": "admin", "password": "password"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"admin"`)
		assert.True(t, auth.IsAdmin())
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	mux, auth := newTestMux(t)
	_, err := auth.Login(t.Context(), "john", "password")
	require.NoError(t, err)

	rec := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
		`{"productId": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("QuoteWithCoupon", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout/quote",
			`{"coupon": "DISCOUNT10"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"discount":4`)
	})

	t.Run("SubmitValidationFailure", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout",
			`{"shipping": {"fullName": "J"}, "payment": {"method": "paypal"}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Submit", func(t *testing.T) {
		body := `{
			"shipping": {
				"fullName": "John Doe", "address": "123 Main St",
				"city": "New York", "state": "NY", "zipCode": "10001",
				"country": "USA", "phone": "555-123-4567"
			},
			"payment": {"method": "paypal"}
		}`
		rec := doJSON(t, mux, http.MethodPost, "/v1/checkout", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"Processing"`)
		assert.Contains(t, rec.Body.String(), `"paymentMethod":"PayPal"`)
	})

	t.Run("HistoryAfterSubmit", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/v1/orders", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"userId":2`)
	})
}
