package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomm-labs/commerce-service/internal/domain"
	apperrors "github.com/ecomm-labs/commerce-service/pkg/util"
)

func newOrderFixture(t *testing.T) (*OrderService, *memoryUserRepo, *memoryProductRepo, *memoryOrderRepo) {
	t.Helper()
	users := newMemoryUserRepo()
	products := newMemoryProductRepo()
	orders := newMemoryOrderRepo()
	svc := NewOrderService(OrderDependencies{
		OrderRepo:   orders,
		ProductRepo: products,
		UserRepo:    users,
	})
	return svc, users, products, orders
}

func seedUser(t *testing.T, users *memoryUserRepo) *domain.User {
	t.Helper()
	user := &domain.User{Name: "Jorge", LastName: "Avila", Email: "jorge@example.com", Active: true}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func seedProduct(t *testing.T, products *memoryProductRepo, name string, price float64) *domain.Product {
	t.Helper()
	product := &domain.Product{Name: name, Description: name + " description", Price: &price, Active: true}
	require.NoError(t, products.Create(context.Background(), product))
	return product
}

func TestCreateOrderComputesTotalAndSnapshotsLines(t *testing.T) {
	svc, users, products, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	laptop := seedProduct(t, products, "Laptop", 1000.00)
	mouse := seedProduct(t, products, "Mouse", 25.50)

	order, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{
		{ProductID: laptop.ID, Quantity: 2},
		{ProductID: mouse.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.True(t, order.Active)
	require.Len(t, order.Lines, 2)
	assert.InDelta(t, 2*1000.00+3*25.50, order.Total, 1e-9)

	first := order.Lines[0]
	assert.Equal(t, laptop.ID, first.ProductID)
	assert.Equal(t, "Laptop", first.ProductName)
	assert.Equal(t, "Laptop description", first.DescriptionSnap)
	assert.Equal(t, 2, first.Quantity)
	assert.InDelta(t, 1000.00, first.UnitPrice, 1e-9)
}

func TestCreateOrderEmptyLinesYieldsZeroTotal(t *testing.T) {
	svc, users, _, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	order, err := svc.CreateOrder(ctx, user.ID, nil)
	require.NoError(t, err)

	assert.Zero(t, order.Total)
	assert.Empty(t, order.Lines)
}

func TestCreateOrderUnknownUserFailsWithoutPersisting(t *testing.T) {
	svc, _, products, orders := newOrderFixture(t)
	ctx := context.Background()

	product := seedProduct(t, products, "Laptop", 1000.00)

	_, err := svc.CreateOrder(ctx, 99, []OrderLineInput{{ProductID: product.ID, Quantity: 1}})
	requireDomainError(t, err, "NOT_FOUND")

	all, listErr := orders.ListAll(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestCreateOrderUnknownProductFailsWithoutPersisting(t *testing.T) {
	svc, users, _, orders := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)

	_, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{{ProductID: 42, Quantity: 1}})
	requireDomainError(t, err, "NOT_FOUND")

	all, listErr := orders.ListAll(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestCreateOrderNilPriceContributesZero(t *testing.T) {
	svc, users, products, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	unpriced := &domain.Product{Name: "Mystery Box", Active: true}
	require.NoError(t, products.Create(ctx, unpriced))

	order, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{{ProductID: unpriced.ID, Quantity: 5}})
	require.NoError(t, err)

	assert.Zero(t, order.Total)
	require.Len(t, order.Lines, 1)
	assert.Zero(t, order.Lines[0].UnitPrice)
}

func TestUpdateOrderRebuildsLinesAndTotal(t *testing.T) {
	svc, users, products, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	laptop := seedProduct(t, products, "Laptop", 1000.00)
	phone := seedProduct(t, products, "Phone", 500.00)

	order, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{{ProductID: laptop.ID, Quantity: 2}})
	require.NoError(t, err)

	updated, err := svc.UpdateOrder(ctx, order.ID, []OrderLineInput{{ProductID: phone.ID, Quantity: 4}})
	require.NoError(t, err)

	require.Len(t, updated.Lines, 1)
	assert.Equal(t, phone.ID, updated.Lines[0].ProductID)
	assert.Equal(t, "Phone", updated.Lines[0].ProductName)
	assert.InDelta(t, 2000.00, updated.Total, 1e-9)
}

func TestUpdateOrderResnapshotsCurrentProductState(t *testing.T) {
	svc, users, products, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	laptop := seedProduct(t, products, "Laptop", 1000.00)

	order, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{{ProductID: laptop.ID, Quantity: 1}})
	require.NoError(t, err)

	newPrice := 1200.00
	laptop.Name = "Laptop Pro"
	laptop.Price = &newPrice
	require.NoError(t, products.Update(ctx, laptop))

	updated, err := svc.UpdateOrder(ctx, order.ID, []OrderLineInput{{ProductID: laptop.ID, Quantity: 1}})
	require.NoError(t, err)

	require.Len(t, updated.Lines, 1)
	assert.Equal(t, "Laptop Pro", updated.Lines[0].ProductName)
	assert.InDelta(t, 1200.00, updated.Total, 1e-9)
}

func TestUpdateInactiveOrderRejectedAndLinesUntouched(t *testing.T) {
	svc, users, products, orders := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	laptop := seedProduct(t, products, "Laptop", 1000.00)

	order, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{{ProductID: laptop.ID, Quantity: 2}})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	_, err = svc.UpdateOrder(ctx, order.ID, []OrderLineInput{{ProductID: laptop.ID, Quantity: 9}})
	requireDomainError(t, err, "INACTIVE_RESOURCE")

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, 2, stored.Lines[0].Quantity)
	assert.InDelta(t, 2000.00, stored.Total, 1e-9)
}

func TestDeleteOrderIsIdempotent(t *testing.T) {
	svc, users, _, orders := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	order, err := svc.CreateOrder(ctx, user.ID, nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))
	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	stored, err := orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	requireDomainError(t, svc.DeleteOrder(ctx, 404), "NOT_FOUND")
}

func TestGetOrderByIDAbsentReturnsNil(t *testing.T) {
	svc, _, _, _ := newOrderFixture(t)

	order, err := svc.GetOrderByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetOrdersByUserValidatesUserFirst(t *testing.T) {
	svc, users, _, _ := newOrderFixture(t)
	ctx := context.Background()

	_, err := svc.GetOrdersByUserID(ctx, 5)
	requireDomainError(t, err, "NOT_FOUND")
	_, err = svc.GetOrdersByUserIDActive(ctx, 5)
	requireDomainError(t, err, "NOT_FOUND")

	user := seedUser(t, users)
	one, err := svc.CreateOrder(ctx, user.ID, nil)
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, user.ID, nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, one.ID))

	all, err := svc.GetOrdersByUserID(ctx, user.ID)
	require.NoError(t, err)
	active, err := svc.GetOrdersByUserIDActive(ctx, user.ID)
	require.NoError(t, err)

	assert.Len(t, all, 2)
	require.Len(t, active, 1)
	assert.True(t, active[0].Active)
}

func TestActiveListingIsStrictSubsetOfFullListing(t *testing.T) {
	svc, users, _, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	first, err := svc.CreateOrder(ctx, user.ID, nil)
	require.NoError(t, err)
	_, err = svc.CreateOrder(ctx, user.ID, nil)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteOrder(ctx, first.ID))

	all, err := svc.GetAllOrders(ctx)
	require.NoError(t, err)
	active, err := svc.GetAllActiveOrders(ctx)
	require.NoError(t, err)

	assert.Len(t, all, 2)
	require.Len(t, active, 1)
	ids := map[int64]bool{}
	for _, order := range all {
		ids[order.ID] = true
	}
	for _, order := range active {
		assert.True(t, order.Active)
		assert.True(t, ids[order.ID])
	}
}

func TestOrderLinesKeepSnapshotAfterProductChanges(t *testing.T) {
	svc, users, products, _ := newOrderFixture(t)
	ctx := context.Background()

	user := seedUser(t, users)
	laptop := seedProduct(t, products, "Laptop", 1000.00)

	order, err := svc.CreateOrder(ctx, user.ID, []OrderLineInput{{ProductID: laptop.ID, Quantity: 2}})
	require.NoError(t, err)

	// Rename, reprice and deactivate the product after the order exists.
	newPrice := 9999.99
	laptop.Name = "Renamed"
	laptop.Price = &newPrice
	laptop.Active = false
	require.NoError(t, products.Update(ctx, laptop))

	fetched, err := svc.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Len(t, fetched.Lines, 1)
	assert.Equal(t, "Laptop", fetched.Lines[0].ProductName)
	assert.InDelta(t, 1000.00, fetched.Lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 2000.00, fetched.Total, 1e-9)
}

func requireDomainError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, code, domainErr.Code)
}
