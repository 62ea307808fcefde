package services

import (
	"context"

	"github.com/lib/pq"

	"refurbmart/internal/models/db_models"
	"refurbmart/internal/models/request_models"
	"refurbmart/internal/repositories"
	"refurbmart/pkg/utils"
)

type CatalogServiceInterface interface {
	CreateCategory(ctx context.Context, req request_models.CategoryRequest) (*db_models.Category, error)
	UpdateCategory(ctx context.Context, id string, req request_models.CategoryRequest) (*db_models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]db_models.Category, error)

	CreateMaster(ctx context.Context, req request_models.MasterOptionRequest) (*db_models.MasterOption, error)
	DeleteMaster(ctx context.Context, id string) error
	ListMasters(ctx context.Context, optionType string) ([]db_models.MasterOption, error)

	CreateSubMaster(ctx context.Context, req request_models.SubMasterOptionRequest) (*db_models.SubMasterOption, error)
	DeleteSubMaster(ctx context.Context, id string) error
	ListSubMasters(ctx context.Context, masterID string) ([]db_models.SubMasterOption, error)

	CreateProduct(ctx context.Context, req request_models.ProductRequest) (*db_models.Product, error)
	UpdateProduct(ctx context.Context, id string, req request_models.ProductRequest) (*db_models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*db_models.Product, error)
	ListProducts(ctx context.Context, categoryID string, page int, pageSize int) ([]db_models.Product, error)

	AddVariant(ctx context.Context, productID string, req request_models.VariantRequest) (*db_models.Variant, error)
}

type CatalogService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	masterRepo   repositories.MasterRepositoryInterface
	productRepo  repositories.ProductRepositoryInterface
	variantRepo  repositories.VariantRepositoryInterface
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepositoryInterface,
	masterRepo repositories.MasterRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	variantRepo repositories.VariantRepositoryInterface,
) CatalogServiceInterface {
	return &CatalogService{
		categoryRepo: categoryRepo,
		masterRepo:   masterRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, req request_models.CategoryRequest) (*db_models.Category, error) {
	existing, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateEntry
	}

	category := &db_models.Category{Name: req.Name, Image: req.Image}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req request_models.CategoryRequest) (*db_models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	if category.Name != req.Name {
		existing, err := s.categoryRepo.FindByName(ctx, req.Name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrDuplicateEntry
		}
	}

	category.Name = req.Name
	category.Image = req.Image
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CatalogService) CreateMaster(ctx context.Context, req request_models.MasterOptionRequest) (*db_models.MasterOption, error) {
	existing, err := s.masterRepo.FindMasterByTypeAndName(ctx, req.Type, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateEntry
	}

	master := &db_models.MasterOption{Type: req.Type, Name: req.Name}
	if err := s.masterRepo.CreateMaster(ctx, master); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return master, nil
}

func (s *CatalogService) DeleteMaster(ctx context.Context, id string) error {
	master, err := s.masterRepo.FindMasterByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if master == nil {
		return utils.ErrMasterNotFound
	}
	if err := s.masterRepo.DeleteMaster(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ListMasters(ctx context.Context, optionType string) ([]db_models.MasterOption, error) {
	masters, err := s.masterRepo.ListMasters(ctx, optionType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return masters, nil
}

func (s *CatalogService) CreateSubMaster(ctx context.Context, req request_models.SubMasterOptionRequest) (*db_models.SubMasterOption, error) {
	master, err := s.masterRepo.FindMasterByID(ctx, req.MasterID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if master == nil {
		return nil, utils.ErrMasterNotFound
	}

	existing, err := s.masterRepo.FindSubMasterByKey(ctx, req.MasterID, req.ParentID, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateEntry
	}

	sub := &db_models.SubMasterOption{
		MasterID: req.MasterID,
		ParentID: req.ParentID,
		Name:     req.Name,
	}
	if err := s.masterRepo.CreateSubMaster(ctx, sub); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sub, nil
}

func (s *CatalogService) DeleteSubMaster(ctx context.Context, id string) error {
	sub, err := s.masterRepo.FindSubMasterByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubMasterNotFound
	}
	if err := s.masterRepo.DeleteSubMaster(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ListSubMasters(ctx context.Context, masterID string) ([]db_models.SubMasterOption, error) {
	subs, err := s.masterRepo.ListSubMasters(ctx, masterID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, req request_models.ProductRequest) (*db_models.Product, error) {
	existing, err := s.productRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateEntry
	}

	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	product := &db_models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      pq.StringArray(req.Images),
		IsActive:    true,
	}
	for _, v := range req.Variants {
		product.Variants = append(product.Variants, db_models.Variant{
			SKU:        v.SKU,
			PriceMinor: v.Price,
			MRPMinor:   v.MRP,
			Stock:      v.Stock,
			InStock:    utils.DeriveInStock(v.Stock, nil),
			MasterID:   v.MasterID,
		})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req request_models.ProductRequest) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	if product.Slug != req.Slug {
		existing, err := s.productRepo.FindBySlug(ctx, req.Slug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			return nil, utils.ErrDuplicateEntry
		}
	}

	product.Name = req.Name
	product.Slug = req.Slug
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.Images = pq.StringArray(req.Images)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if product == nil {
		return utils.ErrProductNotFound
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID string, page int, pageSize int) ([]db_models.Product, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx, categoryID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return products, nil
}

// AddVariant attaches a new sellable configuration to an existing product.
// SKUs are unique across the whole catalogue.
func (s *CatalogService) AddVariant(ctx context.Context, productID string, req request_models.VariantRequest) (*db_models.Variant, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	existing, err := s.variantRepo.FindBySKU(ctx, req.SKU)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrDuplicateEntry
	}

	variant := &db_models.Variant{
		ProductID:  product.ID,
		SKU:        req.SKU,
		PriceMinor: req.Price,
		MRPMinor:   req.MRP,
		Stock:      req.Stock,
		InStock:    utils.DeriveInStock(req.Stock, nil),
		MasterID:   req.MasterID,
	}
	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return variant, nil
}
