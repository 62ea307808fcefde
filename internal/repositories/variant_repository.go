package repositories

import (
	"context"
	"errors"

	"refurbmart/internal/models/db_models"

	"gorm.io/gorm"
)

type VariantRepositoryInterface interface {
	Create(ctx context.Context, variant *db_models.Variant) error
	FindByID(ctx context.Context, id string) (*db_models.Variant, error)
	FindBySKU(ctx context.Context, sku string) (*db_models.Variant, error)
	UpdateStock(ctx context.Context, id string, stock int64, inStock bool) (*db_models.Variant, error)
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryInterface {
	return &variantRepository{db: db}
}

type variantRepository struct {
	db *gorm.DB
}

func (r *variantRepository) Create(ctx context.Context, variant *db_models.Variant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

func (r *variantRepository) FindByID(ctx context.Context, id string) (*db_models.Variant, error) {
	var variant db_models.Variant
	err := r.db.WithContext(ctx).Preload("Product").First(&variant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) FindBySKU(ctx context.Context, sku string) (*db_models.Variant, error) {
	var variant db_models.Variant
	err := r.db.WithContext(ctx).First(&variant, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) UpdateStock(ctx context.Context, id string, stock int64, inStock bool) (*db_models.Variant, error) {
	var variant db_models.Variant
	err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&variant).Updates(map[string]interface{}{
		"stock":    stock,
		"in_stock": inStock,
	}).Error; err != nil {
		return nil, err
	}

	variant.Stock = stock
	variant.InStock = inStock
	return &variant, nil
}
