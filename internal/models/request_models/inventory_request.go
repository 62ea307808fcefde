package request_models

// AdjustStockRequest accepts a JSON number for stock so fractional operator
// input can be floored server-side rather than rejected.
type AdjustStockRequest struct {
	Stock   *float64 `json:"stock" binding:"required,gte=0"`
	InStock *bool    `json:"in_stock"`
}
