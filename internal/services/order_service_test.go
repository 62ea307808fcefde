package services

import (
	"context"
	"errors"
	"testing"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	variants *fakeVariantRepo
	txns     *fakeTxnRepo
	orders   *fakeOrderRepo
	settings *fakeSettingsRepo
	gw       *fakeGateway
	svc      OrderServiceInterface
}

func newOrderFixture(settings db_models.StoreSettings) *orderFixture {
	variants := newFakeVariantRepo()
	txns := newFakeTxnRepo()
	orders := newFakeOrderRepo(txns, variants)
	settingsRepo := &fakeSettingsRepo{settings: settings}
	gw := &fakeGateway{secret: "test-secret", remoteID: "order_rzp_123"}

	return &orderFixture{
		variants: variants,
		txns:     txns,
		orders:   orders,
		settings: settingsRepo,
		gw:       gw,
		svc:      NewOrderService(orders, txns, variants, settingsRepo, gw, "INR"),
	}
}

func (f *orderFixture) addVariant(price int64, stock int64) *db_models.Variant {
	return f.variants.add(&db_models.Variant{
		SKU:        "SKU-" + uuid.NewString()[:8],
		PriceMinor: price,
		Stock:      stock,
		InStock:    stock > 0,
		Product:    db_models.Product{Name: "Renewed Phone"},
	})
}

func checkoutRequest(variantID uuid.UUID, qty int, method string) request_models.CreateOrderRequest {
	return request_models.CreateOrderRequest{
		Items: []request_models.CartLine{{VariantID: variantID, Quantity: qty}},
		Address: request_models.ShippingAddress{
			Name: "A Customer", Phone: "9999999999",
			Line1: "12 MG Road", City: "Bengaluru", State: "KA", Pincode: "560001",
		},
		PaymentMethod: method,
	}
}

func TestComputeTotals(t *testing.T) {
	settings := &db_models.StoreSettings{GSTEnabled: true, GSTRate: 18}
	tax, shipping, total := ComputeTotals(10000, settings)
	assert.Equal(t, int64(1800), tax)
	assert.Equal(t, int64(0), shipping)
	assert.Equal(t, int64(11800), total)

	settings.ShippingEnabled = true
	settings.ShippingAmountMinor = 500
	tax, shipping, total = ComputeTotals(10000, settings)
	assert.Equal(t, int64(1800), tax)
	assert.Equal(t, int64(500), shipping)
	assert.Equal(t, int64(12300), total)

	tax, shipping, total = ComputeTotals(10000, &db_models.StoreSettings{})
	assert.Equal(t, int64(0), tax)
	assert.Equal(t, int64(0), shipping)
	assert.Equal(t, int64(10000), total)
}

func TestCreateOrder_PricingScenario(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{GSTEnabled: true, GSTRate: 18})
	variant := f.addVariant(5000, 10)

	resp, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 2, "cod"))
	require.NoError(t, err)

	assert.Equal(t, int64(10000), resp.Order.Subtotal)
	assert.Equal(t, int64(1800), resp.Order.Tax)
	assert.Equal(t, int64(11800), resp.Order.Total)
	assert.Equal(t, "placed", resp.Order.Status)
	assert.Equal(t, "pending", resp.Order.PaymentStatus)
	assert.Empty(t, resp.GatewayOrderID)

	// Price and name snapshotted into the line.
	require.Len(t, resp.Order.Items, 1)
	assert.Equal(t, int64(5000), resp.Order.Items[0].UnitPrice)
	assert.Equal(t, "Renewed Phone", resp.Order.Items[0].ProductName)

	// Stock reserved.
	assert.Equal(t, int64(8), variant.Stock)

	// Pending manual transaction recorded.
	txn, _ := f.txns.LatestByOrder(context.Background(), resp.Order.ID.String())
	require.NotNil(t, txn)
	assert.Equal(t, db_models.PaymentStatusPending, txn.Status)
	assert.Equal(t, db_models.GatewayManual, txn.Gateway)
	assert.Equal(t, int64(11800), txn.AmountMinor)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})

	req := request_models.CreateOrderRequest{PaymentMethod: "cod"}
	_, err := f.svc.CreateOrder(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrEmptyCart)
}

func TestCreateOrder_UnknownVariantRejectsWholeOrder(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	known := f.addVariant(5000, 10)

	req := request_models.CreateOrderRequest{
		Items: []request_models.CartLine{
			{VariantID: known.ID, Quantity: 1},
			{VariantID: uuid.New(), Quantity: 1},
		},
		Address:       checkoutRequest(known.ID, 1, "cod").Address,
		PaymentMethod: "cod",
	}

	_, err := f.svc.CreateOrder(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
	assert.Empty(t, f.orders.orders, "no partial order may be created")
	assert.Equal(t, int64(10), known.Stock, "no stock may be reserved")
}

func TestCreateOrder_QuantityLimit(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 100)

	_, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 11, "cod"))
	assert.ErrorIs(t, err, utils.ErrQuantityTooHigh)
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 1)

	_, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 2, "cod"))
	assert.ErrorIs(t, err, utils.ErrInsufficientStock)
}

func TestCreateOrder_OnlineReturnsGatewayParams(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{GSTEnabled: true, GSTRate: 18})
	variant := f.addVariant(5000, 10)

	resp, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 2, "razorpay"))
	require.NoError(t, err)

	assert.Equal(t, "order_rzp_123", resp.GatewayOrderID)
	assert.Equal(t, "rzp_test_key", resp.GatewayKeyID)
	assert.Equal(t, int64(11800), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)

	order, _ := f.orders.FindByID(context.Background(), resp.Order.ID.String())
	require.NotNil(t, order)
	assert.Equal(t, "order_rzp_123", order.GatewayOrderID)

	txn, _ := f.txns.LatestByOrder(context.Background(), resp.Order.ID.String())
	require.NotNil(t, txn)
	assert.Equal(t, db_models.PaymentStatusPending, txn.Status)
	assert.Equal(t, db_models.GatewayRazorpay, txn.Gateway)
	assert.Equal(t, "order_rzp_123", txn.GatewayOrderID)
}

func TestCreateOrder_GatewayUnavailable(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 10)
	f.gw.err = errors.New("connection refused")

	_, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 1, "razorpay"))
	assert.ErrorIs(t, err, utils.ErrPaymentUnavailable)

	// The failed attempt is still on the ledger.
	txns, _ := f.txns.ListAll(context.Background(), 1, 10)
	require.Len(t, txns, 1)
	assert.Equal(t, db_models.PaymentStatusFailed, txns[0].Status)
}

func TestCanTransition(t *testing.T) {
	legal := [][2]db_models.OrderStatus{
		{db_models.OrderStatusPlaced, db_models.OrderStatusProcessing},
		{db_models.OrderStatusProcessing, db_models.OrderStatusDispatched},
		{db_models.OrderStatusDispatched, db_models.OrderStatusDelivered},
		{db_models.OrderStatusDelivered, db_models.OrderStatusReturned},
		{db_models.OrderStatusDispatched, db_models.OrderStatusReturned},
		{db_models.OrderStatusPlaced, db_models.OrderStatusCancelled},
		{db_models.OrderStatusProcessing, db_models.OrderStatusCancelled},
	}
	for _, edge := range legal {
		assert.True(t, CanTransition(edge[0], edge[1]), "%s -> %s should be legal", edge[0], edge[1])
	}

	illegal := [][2]db_models.OrderStatus{
		{db_models.OrderStatusDelivered, db_models.OrderStatusPlaced},
		{db_models.OrderStatusPlaced, db_models.OrderStatusDelivered},
		{db_models.OrderStatusPlaced, db_models.OrderStatusReturned},
		{db_models.OrderStatusCancelled, db_models.OrderStatusProcessing},
		{db_models.OrderStatusReturned, db_models.OrderStatusDelivered},
		{db_models.OrderStatusDispatched, db_models.OrderStatusCancelled},
	}
	for _, edge := range illegal {
		assert.False(t, CanTransition(edge[0], edge[1]), "%s -> %s should be illegal", edge[0], edge[1])
	}
}

func TestUpdateStatus_CODDeliveredMarksPaid(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 10)

	resp, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 1, "cod"))
	require.NoError(t, err)
	orderID := resp.Order.ID.String()

	for _, status := range []string{"processing", "dispatched"} {
		summary, err := f.svc.UpdateStatus(context.Background(), orderID, status)
		require.NoError(t, err)
		assert.Equal(t, "pending", summary.PaymentStatus)
	}

	summary, err := f.svc.UpdateStatus(context.Background(), orderID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, "delivered", summary.Status)
	assert.Equal(t, "paid", summary.PaymentStatus)

	txn, _ := f.txns.LatestByOrder(context.Background(), orderID)
	require.NotNil(t, txn)
	assert.Equal(t, db_models.PaymentStatusPaid, txn.Status)
	assert.NotNil(t, txn.PaidAt)
}

func TestUpdateStatus_OnlineNeverAutoPaid(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 10)

	resp, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 1, "razorpay"))
	require.NoError(t, err)
	orderID := resp.Order.ID.String()

	for _, status := range []string{"processing", "dispatched", "delivered"} {
		summary, err := f.svc.UpdateStatus(context.Background(), orderID, status)
		require.NoError(t, err)
		assert.Equal(t, "pending", summary.PaymentStatus,
			"status transition alone must not settle an online order")
	}
}

func TestUpdateStatus_CancelRestoresStock(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 2)

	resp, err := f.svc.CreateOrder(context.Background(), uuid.New(), checkoutRequest(variant.ID, 2, "cod"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), variant.Stock)
	assert.False(t, variant.InStock)

	_, err = f.svc.UpdateStatus(context.Background(), resp.Order.ID.String(), "cancelled")
	require.NoError(t, err)
	assert.Equal(t, int64(2), variant.Stock)
	assert.True(t, variant.InStock, "a variant depleted only by the cancelled order is sellable again")
}

func TestRequestReturn_RestoresStock(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	variant := f.addVariant(5000, 10)
	user := uuid.New()

	resp, err := f.svc.CreateOrder(context.Background(), user, checkoutRequest(variant.ID, 3, "cod"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), variant.Stock)
	orderID := resp.Order.ID.String()

	for _, status := range []string{"processing", "dispatched", "delivered"} {
		_, err := f.svc.UpdateStatus(context.Background(), orderID, status)
		require.NoError(t, err)
	}

	ret, err := f.svc.RequestReturn(context.Background(), user.String(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "returned", ret.Order.Status)
	assert.Equal(t, int64(10), variant.Stock)

	// The idempotent repeat must not restock twice.
	_, err = f.svc.RequestReturn(context.Background(), user.String(), orderID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), variant.Stock)
}

func TestUpdateStatus_IllegalEdgeRejected(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	user := uuid.New()
	order := f.orders.add(&db_models.Order{
		UserID:        user,
		Status:        db_models.OrderStatusDelivered,
		PaymentStatus: db_models.PaymentStatusPaid,
		PaymentMethod: db_models.PaymentMethodCOD,
	})

	_, err := f.svc.UpdateStatus(context.Background(), order.ID.String(), "placed")
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)
	assert.Equal(t, db_models.OrderStatusDelivered, order.Status)
}

func TestUpdateStatus_SameStatusIsNoOp(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	order := f.orders.add(&db_models.Order{
		UserID:        uuid.New(),
		Status:        db_models.OrderStatusProcessing,
		PaymentStatus: db_models.PaymentStatusPending,
		PaymentMethod: db_models.PaymentMethodCOD,
	})

	summary, err := f.svc.UpdateStatus(context.Background(), order.ID.String(), "processing")
	require.NoError(t, err)
	assert.Equal(t, "processing", summary.Status)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	_, err := f.svc.UpdateStatus(context.Background(), uuid.NewString(), "processing")
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
}

func TestRequestReturn_Idempotent(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	user := uuid.New()
	order := f.orders.add(&db_models.Order{
		UserID:        user,
		Status:        db_models.OrderStatusDelivered,
		PaymentStatus: db_models.PaymentStatusPaid,
		PaymentMethod: db_models.PaymentMethodCOD,
	})

	first, err := f.svc.RequestReturn(context.Background(), user.String(), order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "returned", first.Order.Status)
	assert.Equal(t, "Return request accepted", first.Message)

	second, err := f.svc.RequestReturn(context.Background(), user.String(), order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "returned", second.Order.Status)
	assert.Equal(t, "Order has already been returned", second.Message)
	assert.Equal(t, db_models.PaymentStatusPaid, order.PaymentStatus, "no other field may change")
}

func TestRequestReturn_FromPlacedRejected(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	user := uuid.New()
	order := f.orders.add(&db_models.Order{
		UserID:        user,
		Status:        db_models.OrderStatusPlaced,
		PaymentStatus: db_models.PaymentStatusPending,
		PaymentMethod: db_models.PaymentMethodCOD,
	})

	_, err := f.svc.RequestReturn(context.Background(), user.String(), order.ID.String())
	assert.ErrorIs(t, err, utils.ErrReturnNotAllowed)
	assert.Equal(t, db_models.OrderStatusPlaced, order.Status)
}

func TestRequestReturn_FromDispatched(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	user := uuid.New()
	order := f.orders.add(&db_models.Order{
		UserID:        user,
		Status:        db_models.OrderStatusDispatched,
		PaymentMethod: db_models.PaymentMethodCOD,
	})

	resp, err := f.svc.RequestReturn(context.Background(), user.String(), order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "returned", resp.Order.Status)
}

func TestRequestReturn_WrongOwner(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	order := f.orders.add(&db_models.Order{
		UserID: uuid.New(),
		Status: db_models.OrderStatusDelivered,
	})

	_, err := f.svc.RequestReturn(context.Background(), uuid.NewString(), order.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotOrderOwner)
	assert.Equal(t, db_models.OrderStatusDelivered, order.Status)
}

func TestGetOrder_OwnershipAndStaffAccess(t *testing.T) {
	f := newOrderFixture(db_models.StoreSettings{})
	owner := uuid.New()
	order := f.orders.add(&db_models.Order{
		UserID: owner,
		Status: db_models.OrderStatusPlaced,
	})

	_, err := f.svc.GetOrder(context.Background(), owner.String(), db_models.RoleUser, order.ID.String())
	assert.NoError(t, err)

	_, err = f.svc.GetOrder(context.Background(), uuid.NewString(), db_models.RoleUser, order.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotOrderOwner)

	_, err = f.svc.GetOrder(context.Background(), uuid.NewString(), db_models.RoleAdmin, order.ID.String())
	assert.NoError(t, err)
}
