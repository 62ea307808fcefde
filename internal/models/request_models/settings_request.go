package request_models

type UpdateSettingsRequest struct {
	GSTEnabled      *bool  `json:"gst_enabled"`
	GSTRate         *int64 `json:"gst_rate" binding:"omitempty,gte=0,lte=100"`
	ShippingEnabled *bool  `json:"shipping_enabled"`
	ShippingAmount  *int64 `json:"shipping_amount" binding:"omitempty,gte=0"`
}
