package db_models

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusReturned   OrderStatus = "returned"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodOnline PaymentMethod = "razorpay"
)

type Order struct {
	BaseModel
	UserID uuid.UUID   `gorm:"index" json:"user_id"`
	Items  []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	// All amounts in minor units (paise).
	SubtotalMinor int64 `json:"subtotal"`
	TaxMinor      int64 `json:"tax"`
	ShippingMinor int64 `json:"shipping"`
	TotalMinor    int64 `json:"total"`

	// Shipping address snapshot at order time.
	ShipName    string `json:"ship_name"`
	ShipPhone   string `json:"ship_phone"`
	ShipLine1   string `json:"ship_line1"`
	ShipLine2   string `json:"ship_line2"`
	ShipCity    string `json:"ship_city"`
	ShipState   string `json:"ship_state"`
	ShipPincode string `json:"ship_pincode"`

	PaymentMethod PaymentMethod `gorm:"index" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"default:pending;index" json:"payment_status"`
	Status        OrderStatus   `gorm:"default:placed;index" json:"status"`

	// Remote payment-intent reference for online orders.
	GatewayOrderID string `gorm:"index" json:"gateway_order_id,omitempty"`

	Account      Account       `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:OrderID" json:"-"`
}

// OrderItem snapshots the catalogue state of one cart line: name and unit
// price are copied at order time so later catalogue edits cannot rewrite
// history.
type OrderItem struct {
	BaseModel
	OrderID        uuid.UUID `gorm:"index" json:"order_id"`
	VariantID      uuid.UUID `gorm:"index" json:"variant_id"`
	ProductName    string    `json:"product_name"`
	SKU            string    `json:"sku"`
	UnitPriceMinor int64     `json:"unit_price"`
	Quantity       int       `json:"quantity"`
}
