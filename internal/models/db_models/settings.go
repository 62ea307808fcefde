package db_models

// StoreSettings is a singleton row holding the pricing knobs the checkout
// path reads: GST and flat shipping. Amounts in minor units, rate in whole
// percent.
type StoreSettings struct {
	BaseModel
	GSTEnabled          bool  `gorm:"default:false" json:"gst_enabled"`
	GSTRate             int64 `gorm:"default:0" json:"gst_rate"`
	ShippingEnabled     bool  `gorm:"default:false" json:"shipping_enabled"`
	ShippingAmountMinor int64 `gorm:"default:0" json:"shipping_amount"`
}
