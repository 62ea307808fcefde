package repositories

import (
	"context"
	"errors"

	"refurbmart/internal/models/db_models"

	"gorm.io/gorm"
)

type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *db_models.Product) error
	FindByID(ctx context.Context, id string) (*db_models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Product, error)
	List(ctx context.Context, categoryID string, page int, pageSize int) ([]db_models.Product, error)
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id string) error
}

func NewProductRepository(db *gorm.DB) ProductRepositoryInterface {
	return &productRepository{db: db}
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) Create(ctx context.Context, product *db_models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(product).Error
	})
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).Preload("Variants").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).Preload("Variants").First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, categoryID string, page int, pageSize int) ([]db_models.Product, error) {
	var products []db_models.Product
	query := r.db.WithContext(ctx).Preload("Variants").Where("is_active = TRUE")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("created_at DESC").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
}
