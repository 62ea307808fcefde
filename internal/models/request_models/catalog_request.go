package request_models

import "github.com/google/uuid"

type CategoryRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=60"`
	Image string `json:"image"`
}

type MasterOptionRequest struct {
	Type string `json:"type" binding:"required,min=2,max=40"`
	Name string `json:"name" binding:"required,min=1,max=60"`
}

type SubMasterOptionRequest struct {
	MasterID uuid.UUID  `json:"master_id" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
	Name     string     `json:"name" binding:"required,min=1,max=60"`
}

type VariantRequest struct {
	SKU      string     `json:"sku" binding:"required"`
	Price    int64      `json:"price" binding:"required,gt=0"`
	MRP      int64      `json:"mrp" binding:"omitempty,gt=0"`
	Stock    int64      `json:"stock" binding:"gte=0"`
	MasterID *uuid.UUID `json:"master_id"`
}

type ProductRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=120"`
	Slug        string           `json:"slug" binding:"required,min=2,max=120"`
	Description string           `json:"description"`
	CategoryID  uuid.UUID        `json:"category_id" binding:"required"`
	Images      []string         `json:"images"`
	Variants    []VariantRequest `json:"variants" binding:"omitempty,dive"`
}
