package repositories

import (
	"context"
	"errors"
	"time"

	"refurbmart/internal/models/db_models"
	"refurbmart/pkg/utils"

	"gorm.io/gorm"
)

type OrderRepositoryInterface interface {
	// InsertWithStock creates the order and reserves stock for every line in
	// one transaction. A line whose variant has too little stock fails the
	// whole insert with ErrInsufficientStock.
	InsertWithStock(ctx context.Context, order *db_models.Order) error
	FindByID(ctx context.Context, id string) (*db_models.Order, error)
	ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]db_models.Order, error)
	ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Order, error)
	// TransitionStatus sets the order status and, when markPaid is true,
	// flips payment_status to paid and settles the latest transaction, all
	// in one transaction.
	TransitionStatus(ctx context.Context, order *db_models.Order, status db_models.OrderStatus, markPaid bool) error
	// MarkPaid settles a verified online payment: payment_status on the
	// order and status/correlation fields on the latest transaction, in one
	// transaction.
	MarkPaid(ctx context.Context, order *db_models.Order, gatewayPaymentID string, signature string) error
	SetGatewayOrderID(ctx context.Context, order *db_models.Order, gatewayOrderID string) error
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) InsertWithStock(ctx context.Context, order *db_models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&db_models.Variant{}).
				Where("id = ? AND stock >= ?", item.VariantID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return utils.ErrInsufficientStock
			}
			// Zero stock always clears the purchasable flag.
			if err := tx.Model(&db_models.Variant{}).
				Where("id = ? AND stock = 0", item.VariantID).
				Update("in_stock", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(order).Error
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string, page int, pageSize int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Scopes(paginate(page, pageSize)).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) TransitionStatus(ctx context.Context, order *db_models.Order, status db_models.OrderStatus, markPaid bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": status}
		if markPaid {
			updates["payment_status"] = db_models.PaymentStatusPaid
		}
		if err := tx.Model(order).Updates(updates).Error; err != nil {
			return err
		}

		// Cancelled and returned orders release the stock reserved at
		// checkout. Both states are terminal so this runs at most once.
		if status == db_models.OrderStatusCancelled || status == db_models.OrderStatusReturned {
			if err := restoreStock(tx, order); err != nil {
				return err
			}
		}

		order.Status = status
		if markPaid {
			order.PaymentStatus = db_models.PaymentStatusPaid
			return settleLatestTransaction(tx, order, "", "")
		}
		return nil
	})
}

func (r *orderRepository) MarkPaid(ctx context.Context, order *db_models.Order, gatewayPaymentID string, signature string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).
			Update("payment_status", db_models.PaymentStatusPaid).Error; err != nil {
			return err
		}

		order.PaymentStatus = db_models.PaymentStatusPaid
		return settleLatestTransaction(tx, order, gatewayPaymentID, signature)
	})
}

func (r *orderRepository) SetGatewayOrderID(ctx context.Context, order *db_models.Order, gatewayOrderID string) error {
	if err := r.db.WithContext(ctx).Model(order).
		Update("gateway_order_id", gatewayOrderID).Error; err != nil {
		return err
	}
	order.GatewayOrderID = gatewayOrderID
	return nil
}

// restoreStock returns every line's quantity to its variant. A variant whose
// purchasable flag was cleared by depletion becomes purchasable again; an
// operator's explicit override on a non-zero variant is left alone.
func restoreStock(tx *gorm.DB, order *db_models.Order) error {
	for _, item := range order.Items {
		if err := tx.Model(&db_models.Variant{}).
			Where("id = ? AND stock = 0", item.VariantID).
			Update("in_stock", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&db_models.Variant{}).
			Where("id = ?", item.VariantID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}

// settleLatestTransaction marks the most recent transaction for the order as
// paid. Earlier attempts are left untouched as audit history.
func settleLatestTransaction(tx *gorm.DB, order *db_models.Order, gatewayPaymentID string, signature string) error {
	// created_at is unix seconds; the id tie-break keeps same-second
	// attempts from resolving nondeterministically.
	var txn db_models.Transaction
	err := tx.Where("order_id = ?", order.ID).
		Order("created_at DESC, id DESC").
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A cod order recorded without a transaction row; nothing to settle.
			return nil
		}
		return err
	}

	now := time.Now().Unix()
	updates := map[string]interface{}{
		"status":  db_models.PaymentStatusPaid,
		"paid_at": now,
	}
	if gatewayPaymentID != "" {
		updates["gateway_txn_id"] = gatewayPaymentID
	}
	if signature != "" {
		updates["gateway_signature"] = signature
	}

	return tx.Model(&txn).Updates(updates).Error
}

func paginate(page int, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}
