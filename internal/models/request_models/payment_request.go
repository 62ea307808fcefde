package request_models

import "github.com/google/uuid"

// VerifyPaymentRequest carries the triple the gateway's client flow returns
// after a completed checkout, plus the local order it should settle.
type VerifyPaymentRequest struct {
	OrderID          uuid.UUID `json:"order_id" binding:"required"`
	GatewayOrderID   string    `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string    `json:"gateway_payment_id" binding:"required"`
	Signature        string    `json:"signature" binding:"required"`
}
