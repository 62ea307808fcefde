package response_models

import "github.com/google/uuid"

type TransactionResponse struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	PaymentMethod  string    `json:"payment_method"`
	Status         string    `json:"status"`
	Gateway        string    `json:"gateway"`
	GatewayOrderID string    `json:"gateway_order_id,omitempty"`
	GatewayTxnID   string    `json:"gateway_txn_id,omitempty"`
	PaidAt         *int64    `json:"paid_at,omitempty"`
	CreatedAt      int64     `json:"created_at"`
}
