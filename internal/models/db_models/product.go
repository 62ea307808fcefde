package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name        string         `gorm:"not null" json:"name"`
	Slug        string         `gorm:"unique;not null" json:"slug"`
	Description string         `json:"description"`
	CategoryID  uuid.UUID      `gorm:"index" json:"category_id"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`

	Category Category  `gorm:"foreignKey:CategoryID" json:"-"`
	Variants []Variant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// Variant is the sellable unit: one refurbished configuration of a product
// (grade, RAM, storage) with its own price and stock.
type Variant struct {
	BaseModel
	ProductID  uuid.UUID  `gorm:"index" json:"product_id"`
	SKU        string     `gorm:"unique;not null" json:"sku"`
	PriceMinor int64      `gorm:"not null" json:"price"`
	MRPMinor   int64      `json:"mrp"`
	Stock      int64      `gorm:"default:0" json:"stock"`
	InStock    bool       `gorm:"default:false" json:"in_stock"`
	MasterID   *uuid.UUID `gorm:"index" json:"master_id,omitempty"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}
