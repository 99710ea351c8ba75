package service_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id, userID int, date string, total float64) domain.Order {
	return domain.Order{
		ID:     id,
		Number: "ORD-" + string(rune('0'+id%10)),
		UserID: userID,
		Products: []domain.OrderLine{
			{ProductID: 1, Quantity: 2, Price: 20},
		},
		Total:  total,
		Status: domain.StatusProcessing,
		Date:   date,
		ShippingAddress: domain.ShippingAddress{
			Name: "John Doe", Street: "123 Main St",
		},
		PaymentMethod: "PayPal",
	}
}

func newTestOrders(t *testing.T) (*service.Orders, storage.KV) {
	t.Helper()
	kv := storage.OpenMemory()
	orders := service.NewOrders(kv)
	require.NoError(t, orders.Load())
	return orders, kv
}

func TestOrdersAppend(t *testing.T) {
	orders, kv := newTestOrders(t)
	require.NoError(t, orders.Append(testOrder(101, 2, "2026-08-01", 53.2)))

	got, ok := orders.ByID(101)
	require.True(t, ok)
	assert.Equal(t, 2, got.UserID)
	assert.True(t, orders.Has(101))

	restored := service.NewOrders(kv)
	require.NoError(t, restored.Load())
	assert.Equal(t, 1, restored.Count())
}

func TestOrdersListByUser(t *testing.T) {
	orders, _ := newTestOrders(t)
	require.NoError(t, orders.Append(testOrder(101, 2, "2026-08-01", 10)))
	require.NoError(t, orders.Append(testOrder(102, 2, "2026-08-15", 20)))
	require.NoError(t, orders.Append(testOrder(103, 3, "2026-08-20", 30)))

	got := orders.ListByUser(2)
	require.Len(t, got, 2)
	assert.Equal(t, 102, got[0].ID)
	assert.Equal(t, 101, got[1].ID)
}

func TestOrdersUpdateStatus(t *testing.T) {
	t.Run("OverwritesStatusOnly", func(t *testing.T) {
		orders, _ := newTestOrders(t)
		created := testOrder(101, 2, "2026-08-01", 53.2)
		require.NoError(t, orders.Append(created))

		require.NoError(t, orders.UpdateStatus(101, domain.StatusDelivered))

		got, ok := orders.ByID(101)
		require.True(t, ok)
		assert.Equal(t, domain.StatusDelivered, got.Status)
		assert.Equal(t, created.Products, got.Products)
		assert.Equal(t, created.Total, got.Total)
		assert.Equal(t, created.Date, got.Date)
	})

	t.Run("AnyStatusMayFollowAnyOther", func(t *testing.T) {
		orders, _ := newTestOrders(t)
		require.NoError(t, orders.Append(testOrder(101, 2, "2026-08-01", 10)))
		require.NoError(t, orders.UpdateStatus(101, domain.StatusDelivered))
		require.NoError(t, orders.UpdateStatus(101, domain.StatusProcessing))
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		orders, _ := newTestOrders(t)
		require.NoError(t, orders.Append(testOrder(101, 2, "2026-08-01", 10)))
		err := orders.UpdateStatus(101, "Teleported")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("MissingOrder", func(t *testing.T) {
		orders, _ := newTestOrders(t)
		err := orders.UpdateStatus(999, domain.StatusShipped)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrdersFind(t *testing.T) {
	orders, _ := newTestOrders(t)
	o1 := testOrder(101, 2, "2026-08-01", 10)
	o2 := testOrder(102, 3, "2026-08-02", 20)
	o2.ShippingAddress.Name = "Jane Smith"
	require.NoError(t, orders.Append(o1))
	require.NoError(t, orders.Append(o2))
	require.NoError(t, orders.UpdateStatus(102, domain.StatusShipped))

	t.Run("ByStatus", func(t *testing.T) {
		got := orders.Find("", domain.StatusShipped)
		require.Len(t, got, 1)
		assert.Equal(t, 102, got[0].ID)
	})

	t.Run("ByCustomerName", func(t *testing.T) {
		got := orders.Find("jane", "")
		require.Len(t, got, 1)
		assert.Equal(t, 102, got[0].ID)
	})

	t.Run("ByID", func(t *testing.T) {
		got := orders.Find("101", "")
		require.Len(t, got, 1)
	})

	t.Run("NoCriteriaNewestFirst", func(t *testing.T) {
		got := orders.Find("", "")
		require.Len(t, got, 2)
		assert.Equal(t, 102, got[0].ID)
	})
}

func TestOrdersStats(t *testing.T) {
	orders, _ := newTestOrders(t)

	o1 := testOrder(101, 2, "2026-08-01", 50)
	o1.Products = []domain.OrderLine{
		{ProductID: 1, Quantity: 2, Price: 20},
		{ProductID: 2, Quantity: 1, Price: 5},
	}
	o2 := testOrder(102, 3, "2026-08-02", 30)
	o2.Products = []domain.OrderLine{
		{ProductID: 2, Quantity: 4, Price: 5},
	}
	require.NoError(t, orders.Append(o1))
	require.NoError(t, orders.Append(o2))

	assert.InDelta(t, 80.0, orders.TotalRevenue(), 1e-9)
	assert.Equal(t, 2, orders.Count())

	top := orders.TopProducts(5)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].ProductID)
	assert.InDelta(t, 40.0, top[0].TotalSales, 1e-9)
	assert.Equal(t, 2, top[1].ProductID)
	assert.InDelta(t, 25.0, top[1].TotalSales, 1e-9)
	assert.Equal(t, 5, top[1].Quantity)

	assert.Len(t, orders.TopProducts(1), 1)
}
