package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/internal/models/response_models"
	"refurbmart/internal/repositories"
	"refurbmart/pkg/gateway"
	"refurbmart/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const maxQuantityPerLine = 10

// allowedTransitions is the directed order-lifecycle graph. Forward motion is
// placed -> processing -> dispatched -> delivered; cancellation is a side
// exit before dispatch, return a side exit after dispatch.
var allowedTransitions = map[db_models.OrderStatus][]db_models.OrderStatus{
	db_models.OrderStatusPlaced:     {db_models.OrderStatusProcessing, db_models.OrderStatusCancelled},
	db_models.OrderStatusProcessing: {db_models.OrderStatusDispatched, db_models.OrderStatusCancelled},
	db_models.OrderStatusDispatched: {db_models.OrderStatusDelivered, db_models.OrderStatusReturned},
	db_models.OrderStatusDelivered:  {db_models.OrderStatusReturned},
	db_models.OrderStatusCancelled:  {},
	db_models.OrderStatusReturned:   {},
}

// CanTransition reports whether status may move from one state to another.
// A same-state "transition" is allowed as a no-op.
func CanTransition(from, to db_models.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ComputeTotals derives tax and shipping from the store settings. Amounts in
// minor units; the GST rate is a whole percent and truncates toward zero.
func ComputeTotals(subtotal int64, settings *db_models.StoreSettings) (tax int64, shipping int64, total int64) {
	if settings.GSTEnabled {
		tax = subtotal * settings.GSTRate / 100
	}
	if settings.ShippingEnabled {
		shipping = settings.ShippingAmountMinor
	}
	return tax, shipping, subtotal + tax + shipping
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.CheckoutResponse, error)
	GetOrder(ctx context.Context, callerID string, callerRole string, orderID string) (*response_models.OrderSummary, error)
	ListOrdersForUser(ctx context.Context, userID string, page int, pageSize int) ([]response_models.OrderSummary, error)
	ListAllOrders(ctx context.Context, page int, pageSize int) ([]response_models.OrderSummary, error)
	UpdateStatus(ctx context.Context, orderID string, target string) (*response_models.OrderSummary, error)
	RequestReturn(ctx context.Context, userID string, orderID string) (*response_models.ReturnResponse, error)
}

type OrderService struct {
	orderRepo    repositories.OrderRepositoryInterface
	txnRepo      repositories.TransactionRepositoryInterface
	variantRepo  repositories.VariantRepositoryInterface
	settingsRepo repositories.SettingsRepositoryInterface
	gw           gateway.Gateway
	currency     string
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	variantRepo repositories.VariantRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	gw gateway.Gateway,
	currency string,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:    orderRepo,
		txnRepo:      txnRepo,
		variantRepo:  variantRepo,
		settingsRepo: settingsRepo,
		gw:           gw,
		currency:     currency,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req request_models.CreateOrderRequest) (*response_models.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, utils.ErrEmptyCart
	}

	// Resolve every line against the live catalogue before writing anything:
	// one unknown variant rejects the whole order.
	var subtotal int64
	items := make([]db_models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity < 1 || line.Quantity > maxQuantityPerLine {
			return nil, utils.ErrQuantityTooHigh
		}

		variant, err := s.variantRepo.FindByID(ctx, line.VariantID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if variant == nil {
			return nil, utils.ErrProductNotFound
		}

		subtotal += variant.PriceMinor * int64(line.Quantity)
		items = append(items, db_models.OrderItem{
			VariantID:      variant.ID,
			ProductName:    variant.Product.Name,
			SKU:            variant.SKU,
			UnitPriceMinor: variant.PriceMinor,
			Quantity:       line.Quantity,
		})
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	tax, shipping, total := ComputeTotals(subtotal, settings)

	order := &db_models.Order{
		UserID:        userID,
		Items:         items,
		SubtotalMinor: subtotal,
		TaxMinor:      tax,
		ShippingMinor: shipping,
		TotalMinor:    total,
		ShipName:      req.Address.Name,
		ShipPhone:     req.Address.Phone,
		ShipLine1:     req.Address.Line1,
		ShipLine2:     req.Address.Line2,
		ShipCity:      req.Address.City,
		ShipState:     req.Address.State,
		ShipPincode:   req.Address.Pincode,
		PaymentMethod: db_models.PaymentMethod(req.PaymentMethod),
		PaymentStatus: db_models.PaymentStatusPending,
		Status:        db_models.OrderStatusPlaced,
	}

	if err := s.orderRepo.InsertWithStock(ctx, order); err != nil {
		if errors.Is(err, utils.ErrInsufficientStock) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.CheckoutResponse{Order: toOrderSummary(order)}

	if order.PaymentMethod == db_models.PaymentMethodCOD {
		txn := &db_models.Transaction{
			OrderID:       order.ID,
			AmountMinor:   total,
			Currency:      s.currency,
			PaymentMethod: order.PaymentMethod,
			Status:        db_models.PaymentStatusPending,
			Gateway:       db_models.GatewayManual,
		}
		if err := s.txnRepo.Insert(ctx, txn); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return resp, nil
	}

	remoteOrderID, gwErr := s.gw.CreateRemoteOrder(ctx, total, s.currency, order.ID.String())
	if gwErr != nil {
		log.Printf("gateway order creation failed for order %s: %v", order.ID, gwErr)
		failed := &db_models.Transaction{
			OrderID:       order.ID,
			AmountMinor:   total,
			Currency:      s.currency,
			PaymentMethod: order.PaymentMethod,
			Status:        db_models.PaymentStatusFailed,
			Gateway:       s.gw.Name(),
			Raw:           datatypes.JSON(fmt.Sprintf(`{"error":%q}`, gwErr.Error())),
		}
		if err := s.txnRepo.Insert(ctx, failed); err != nil {
			log.Printf("failed to record gateway failure for order %s: %v", order.ID, err)
		}
		return nil, utils.ErrPaymentUnavailable
	}

	if err := s.orderRepo.SetGatewayOrderID(ctx, order, remoteOrderID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	txn := &db_models.Transaction{
		OrderID:        order.ID,
		AmountMinor:    total,
		Currency:       s.currency,
		PaymentMethod:  order.PaymentMethod,
		Status:         db_models.PaymentStatusPending,
		Gateway:        s.gw.Name(),
		GatewayOrderID: remoteOrderID,
	}
	if err := s.txnRepo.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp.Order = toOrderSummary(order)
	resp.GatewayOrderID = remoteOrderID
	resp.GatewayKeyID = s.gw.KeyID()
	resp.Amount = total
	resp.Currency = s.currency
	return resp, nil
}

func (s *OrderService) GetOrder(ctx context.Context, callerID string, callerRole string, orderID string) (*response_models.OrderSummary, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	if !db_models.IsStaffRole(callerRole) && order.UserID.String() != callerID {
		return nil, utils.ErrNotOrderOwner
	}

	summary := toOrderSummary(order)
	return &summary, nil
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string, page int, pageSize int) ([]response_models.OrderSummary, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toOrderSummaries(orders), nil
}

func (s *OrderService) ListAllOrders(ctx context.Context, page int, pageSize int) ([]response_models.OrderSummary, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListAll(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toOrderSummaries(orders), nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, target string) (*response_models.OrderSummary, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	targetStatus := db_models.OrderStatus(target)
	if order.Status == targetStatus {
		summary := toOrderSummary(order)
		return &summary, nil
	}
	if !CanTransition(order.Status, targetStatus) {
		return nil, utils.ErrInvalidTransition
	}

	// Cash collected at the door: delivering a cod order settles it.
	markPaid := order.PaymentMethod == db_models.PaymentMethodCOD &&
		targetStatus == db_models.OrderStatusDelivered &&
		order.PaymentStatus != db_models.PaymentStatusPaid

	if err := s.orderRepo.TransitionStatus(ctx, order, targetStatus, markPaid); err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := toOrderSummary(order)
	return &summary, nil
}

func (s *OrderService) RequestReturn(ctx context.Context, userID string, orderID string) (*response_models.ReturnResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	if order.UserID.String() != userID {
		return nil, utils.ErrNotOrderOwner
	}

	// Duplicate submissions (double-tap) land here; report success, change
	// nothing.
	if order.Status == db_models.OrderStatusReturned {
		return &response_models.ReturnResponse{
			Order:   toOrderSummary(order),
			Message: "Order has already been returned",
		}, nil
	}

	if order.Status != db_models.OrderStatusDispatched && order.Status != db_models.OrderStatusDelivered {
		return nil, utils.ErrReturnNotAllowed
	}

	if err := s.orderRepo.TransitionStatus(ctx, order, db_models.OrderStatusReturned, false); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ReturnResponse{
		Order:   toOrderSummary(order),
		Message: "Return request accepted",
	}, nil
}

func toOrderSummary(order *db_models.Order) response_models.OrderSummary {
	items := make([]response_models.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, response_models.OrderItemResponse{
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			UnitPrice:   item.UnitPriceMinor,
			Quantity:    item.Quantity,
		})
	}

	return response_models.OrderSummary{
		ID:            order.ID,
		UserID:        order.UserID,
		Items:         items,
		Subtotal:      order.SubtotalMinor,
		Tax:           order.TaxMinor,
		Shipping:      order.ShippingMinor,
		Total:         order.TotalMinor,
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderSummaries(orders []db_models.Order) []response_models.OrderSummary {
	summaries := make([]response_models.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, toOrderSummary(&orders[i]))
	}
	return summaries
}

func validatePaging(page int, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}
