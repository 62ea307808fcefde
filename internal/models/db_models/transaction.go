package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	GatewayManual   = "manual"
	GatewayRazorpay = "razorpay"
)

// Transaction is one payment attempt against an order. Orders accumulate
// transactions (1:N); the most recently created one is the current attempt.
// Rows are never deleted.
type Transaction struct {
	BaseModel
	OrderID uuid.UUID `gorm:"index" json:"order_id"`

	AmountMinor   int64         `json:"amount"`
	Currency      string        `gorm:"size:3" json:"currency"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        PaymentStatus `gorm:"default:pending;index" json:"status"`

	// Gateway correlation. Gateway is "manual" for cash-on-delivery rows.
	Gateway          string `gorm:"index" json:"gateway"`
	GatewayOrderID   string `gorm:"index" json:"gateway_order_id,omitempty"`
	GatewayTxnID     string `gorm:"index" json:"gateway_txn_id,omitempty"`
	GatewaySignature string `json:"-"`

	PaidAt *int64 `json:"paid_at,omitempty"`

	// Raw gateway payloads and failure reasons, kept for audit.
	Raw datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"-"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}
