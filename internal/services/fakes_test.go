package services

import (
	"context"
	"time"

	"refurbmart/internal/models/db_models"
	"refurbmart/pkg/utils"

	"github.com/google/uuid"
)

// In-memory stand-ins for the gorm repositories. They reproduce the coupled
// order/transaction settlement the real repositories perform transactionally.

type fakeVariantRepo struct {
	variants map[uuid.UUID]*db_models.Variant
}

func newFakeVariantRepo() *fakeVariantRepo {
	return &fakeVariantRepo{variants: map[uuid.UUID]*db_models.Variant{}}
}

func (f *fakeVariantRepo) add(v *db_models.Variant) *db_models.Variant {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.variants[v.ID] = v
	return v
}

func (f *fakeVariantRepo) Create(ctx context.Context, variant *db_models.Variant) error {
	f.add(variant)
	return nil
}

func (f *fakeVariantRepo) FindByID(ctx context.Context, id string) (*db_models.Variant, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	variant, ok := f.variants[parsed]
	if !ok {
		return nil, nil
	}
	return variant, nil
}

func (f *fakeVariantRepo) FindBySKU(ctx context.Context, sku string) (*db_models.Variant, error) {
	for _, v := range f.variants {
		if v.SKU == sku {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVariantRepo) UpdateStock(ctx context.Context, id string, stock int64, inStock bool) (*db_models.Variant, error) {
	variant, err := f.FindByID(ctx, id)
	if err != nil || variant == nil {
		return nil, err
	}
	variant.Stock = stock
	variant.InStock = inStock
	return variant, nil
}

type fakeTxnRepo struct {
	txns []*db_models.Transaction
	seq  int64
}

func newFakeTxnRepo() *fakeTxnRepo {
	return &fakeTxnRepo{}
}

func (f *fakeTxnRepo) Insert(ctx context.Context, txn *db_models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	f.seq++
	txn.CreatedAt = f.seq
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeTxnRepo) ListByOrder(ctx context.Context, orderID string) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for i := len(f.txns) - 1; i >= 0; i-- {
		if f.txns[i].OrderID.String() == orderID {
			out = append(out, *f.txns[i])
		}
	}
	return out, nil
}

func (f *fakeTxnRepo) LatestByOrder(ctx context.Context, orderID string) (*db_models.Transaction, error) {
	var latest *db_models.Transaction
	for _, txn := range f.txns {
		if txn.OrderID.String() != orderID {
			continue
		}
		if latest == nil || txn.CreatedAt > latest.CreatedAt {
			latest = txn
		}
	}
	return latest, nil
}

func (f *fakeTxnRepo) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Transaction, error) {
	var out []db_models.Transaction
	for _, txn := range f.txns {
		out = append(out, *txn)
	}
	return out, nil
}

func (f *fakeTxnRepo) settleLatest(orderID uuid.UUID, gatewayPaymentID string, signature string) {
	latest, _ := f.LatestByOrder(context.Background(), orderID.String())
	if latest == nil {
		return
	}
	now := time.Now().Unix()
	latest.Status = db_models.PaymentStatusPaid
	latest.PaidAt = &now
	if gatewayPaymentID != "" {
		latest.GatewayTxnID = gatewayPaymentID
	}
	if signature != "" {
		latest.GatewaySignature = signature
	}
}

type fakeOrderRepo struct {
	orders       map[uuid.UUID]*db_models.Order
	txns         *fakeTxnRepo
	variants     *fakeVariantRepo
	markPaidCall int
}

func newFakeOrderRepo(txns *fakeTxnRepo, variants *fakeVariantRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   map[uuid.UUID]*db_models.Order{},
		txns:     txns,
		variants: variants,
	}
}

func (f *fakeOrderRepo) add(order *db_models.Order) *db_models.Order {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return order
}

func (f *fakeOrderRepo) InsertWithStock(ctx context.Context, order *db_models.Order) error {
	for _, item := range order.Items {
		variant, ok := f.variants.variants[item.VariantID]
		if !ok || variant.Stock < int64(item.Quantity) {
			return utils.ErrInsufficientStock
		}
	}
	for _, item := range order.Items {
		variant := f.variants.variants[item.VariantID]
		variant.Stock -= int64(item.Quantity)
		if variant.Stock == 0 {
			variant.InStock = false
		}
	}
	f.add(order)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*db_models.Order, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	order, ok := f.orders[parsed]
	if !ok {
		return nil, nil
	}
	return order, nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, order := range f.orders {
		if order.UserID.String() == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, order := range f.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeOrderRepo) TransitionStatus(ctx context.Context, order *db_models.Order, status db_models.OrderStatus, markPaid bool) error {
	if status == db_models.OrderStatusCancelled || status == db_models.OrderStatusReturned {
		for _, item := range order.Items {
			if variant, ok := f.variants.variants[item.VariantID]; ok {
				if variant.Stock == 0 {
					variant.InStock = true
				}
				variant.Stock += int64(item.Quantity)
			}
		}
	}
	order.Status = status
	if markPaid {
		order.PaymentStatus = db_models.PaymentStatusPaid
		f.txns.settleLatest(order.ID, "", "")
	}
	return nil
}

func (f *fakeOrderRepo) MarkPaid(ctx context.Context, order *db_models.Order, gatewayPaymentID string, signature string) error {
	f.markPaidCall++
	order.PaymentStatus = db_models.PaymentStatusPaid
	f.txns.settleLatest(order.ID, gatewayPaymentID, signature)
	return nil
}

func (f *fakeOrderRepo) SetGatewayOrderID(ctx context.Context, order *db_models.Order, gatewayOrderID string) error {
	order.GatewayOrderID = gatewayOrderID
	return nil
}

type fakeSettingsRepo struct {
	settings db_models.StoreSettings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*db_models.StoreSettings, error) {
	return &f.settings, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *db_models.StoreSettings) error {
	f.settings = *settings
	return nil
}

type fakeGateway struct {
	secret   string
	remoteID string
	err      error
	calls    int
}

func (g *fakeGateway) CreateRemoteOrder(ctx context.Context, amountMinor int64, currency string, receipt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.remoteID, nil
}

func (g *fakeGateway) VerifySignature(remoteOrderID, remotePaymentID, signature string) bool {
	return utils.VerifyPaymentSignature(g.secret, remoteOrderID, remotePaymentID, signature)
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

func (g *fakeGateway) Name() string { return "razorpay" }
