package request_models

import "github.com/google/uuid"

type CartLine struct {
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=10"`
}

type ShippingAddress struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
}

type CreateOrderRequest struct {
	Items         []CartLine      `json:"items" binding:"required,min=1,dive"`
	Address       ShippingAddress `json:"address" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=cod razorpay"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=placed processing dispatched delivered cancelled returned"`
}
