package services

import (
	"context"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/internal/repositories"
	"refurbmart/pkg/utils"
)

type InventoryServiceInterface interface {
	AdjustStock(ctx context.Context, variantID string, req request_models.AdjustStockRequest) (*db_models.Variant, error)
}

type InventoryService struct {
	variantRepo repositories.VariantRepositoryInterface
}

func NewInventoryService(variantRepo repositories.VariantRepositoryInterface) InventoryServiceInterface {
	return &InventoryService{
		variantRepo: variantRepo,
	}
}

// AdjustStock applies an operator stock edit. The supplied value is clamped
// to a non-negative integer and the purchasable flag re-derived: zero stock
// always forces it off, whatever the operator sent.
func (s *InventoryService) AdjustStock(ctx context.Context, variantID string, req request_models.AdjustStockRequest) (*db_models.Variant, error) {
	stock := utils.ClampStock(*req.Stock)
	inStock := utils.DeriveInStock(stock, req.InStock)

	variant, err := s.variantRepo.UpdateStock(ctx, variantID, stock, inStock)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if variant == nil {
		return nil, utils.ErrVariantNotFound
	}
	return variant, nil
}
