package response_models

import "github.com/google/uuid"

type OrderItemResponse struct {
	VariantID   uuid.UUID `json:"variant_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	UnitPrice   int64     `json:"unit_price"`
	Quantity    int       `json:"quantity"`
}

type OrderSummary struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"user_id"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      int64               `json:"subtotal"`
	Tax           int64               `json:"tax"`
	Shipping      int64               `json:"shipping"`
	Total         int64               `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Status        string              `json:"status"`
	CreatedAt     int64               `json:"created_at"`
}

// CheckoutResponse is returned by order creation. The gateway fields are set
// only for online orders; the client uses them to open the provider's
// checkout. No secret material is included.
type CheckoutResponse struct {
	Order          OrderSummary `json:"order"`
	GatewayOrderID string       `json:"gateway_order_id,omitempty"`
	GatewayKeyID   string       `json:"gateway_key_id,omitempty"`
	Amount         int64        `json:"amount,omitempty"`
	Currency       string       `json:"currency,omitempty"`
}

type ReturnResponse struct {
	Order   OrderSummary `json:"order"`
	Message string       `json:"message"`
}
