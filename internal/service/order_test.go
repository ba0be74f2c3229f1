package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echofashion/storefront-api/internal/model"
)

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	a := f.addProduct(t, "ProductA", "10.00", "M")
	b := f.addProduct(t, "ProductB", "5.50", "L")
	require.NoError(t, cartSvc.AddLine(ctx, a.ID, "M"))
	require.NoError(t, cartSvc.AddLine(ctx, a.ID, "M"))
	require.NoError(t, cartSvc.AddLine(ctx, b.ID, "L"))

	order, err := svc.Place(ctx, "u1", testAddress())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("25.50")), "got %s", order.Total)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// checkout empties the cart
	lines, err := cartSvc.Lines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOrderService_Place_EmptyCart(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	_, err := svc.Place(context.Background(), "u1", testAddress())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderService_Place_GuestFallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "79.99", "M")
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))

	order, err := svc.Place(ctx, "", testAddress())
	require.NoError(t, err)
	assert.Equal(t, model.GuestUserID, order.UserID)
}

func TestOrderService_Place_InvalidAddress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "79.99", "M")
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))

	for _, addr := range []model.ShippingAddress{
		{Address: "1 Main St", City: "Springfield", Phone: "555-0100"},
		{Name: "Jo", City: "Springfield", Phone: "555-0100"},
		{Name: "Jo", Address: "1 Main St", Phone: "555-0100"},
		{Name: "Jo", Address: "1 Main St", City: "Springfield", Phone: "   "},
	} {
		_, err := svc.Place(ctx, "u1", addr)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	}

	// nothing was placed, cart untouched
	lines, err := cartSvc.Lines(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestOrderService_SnapshotImmuneToCartMutation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "10.00", "M")
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))

	order, err := svc.Place(ctx, "u1", testAddress())
	require.NoError(t, err)

	// refill and mutate the live cart after ordering
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))
	require.NoError(t, cartSvc.UpdateQuantity(ctx, product.ID, "M", 50))

	got, err := svc.Get(ctx, order.ID, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("10.00")))
}

func TestOrderService_Get_Authorization(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "79.99", "M")
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))
	order, err := svc.Place(ctx, "u1", testAddress())
	require.NoError(t, err)

	_, err = svc.Get(ctx, order.ID, "someone-else", false)
	assert.ErrorIs(t, err, ErrOrderAccessDenied)

	got, err := svc.Get(ctx, order.ID, "someone-else", true)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.Get(ctx, "missing", "u1", false)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_ForwardSteps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "79.99", "M")
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))
	order, err := svc.Place(ctx, "u1", testAddress())
	require.NoError(t, err)

	for _, next := range []model.OrderStatus{model.StatusConfirmed, model.StatusShipped, model.StatusDelivered} {
		got, err := svc.UpdateStatus(ctx, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.Status)
	}
}

func TestOrderService_UpdateStatus_RejectsOutOfOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "79.99", "M")
	require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))
	order, err := svc.Place(ctx, "u1", testAddress())
	require.NoError(t, err)

	// skipping forward
	_, err = svc.UpdateStatus(ctx, order.ID, model.StatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// going backward
	_, err = svc.UpdateStatus(ctx, order.ID, model.StatusConfirmed)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, order.ID, model.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// delivered is terminal
	_, err = svc.UpdateStatus(ctx, order.ID, model.StatusShipped)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, order.ID, model.StatusDelivered)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, order.ID, model.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_UnknownOrder(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	_, err := svc.UpdateStatus(context.Background(), "missing", model.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newFixture(t)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	_, err := svc.UpdateStatus(context.Background(), "any", model.OrderStatus("cancelled"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	cartSvc := NewCartService(f.cartRepo, f.catalogRepo)
	svc := NewOrderService(f.orderRepo, f.cartRepo)

	product := f.addProduct(t, "Shirt", "79.99", "M")

	var ids []string
	for i := 0; i < 3; i++ {
		require.NoError(t, cartSvc.AddLine(ctx, product.ID, "M"))
		order, err := svc.Place(ctx, "u1", testAddress())
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}

	orders, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, o := range orders {
		assert.Equal(t, ids[i], o.ID)
	}
}
