package controllers

import (
	"net/http"

	"refurbmart/internal/models/request_models"
	"refurbmart/internal/services"
	"refurbmart/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListProducts godoc
// @Summary List active products
// @Tags Catalog
// @Produce json
// @Param category query string false "Category ID filter"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/products [get]
func (cc *CatalogController) ListProducts(c *gin.Context) {
	page, pageSize := paging(c)
	products, err := cc.catalogService.ListProducts(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, products, "Products fetched successfully")
}

func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, err := cc.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product fetched successfully")
}

func (cc *CatalogController) ListCategories(c *gin.Context) {
	categories, err := cc.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

// CreateCategory godoc
// @Summary Create a category (staff only)
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/categories [post]
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := cc.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Category created successfully")
}

func (cc *CatalogController) UpdateCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := cc.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Category updated successfully")
}

func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	if err := cc.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

func (cc *CatalogController) ListMasters(c *gin.Context) {
	masters, err := cc.catalogService.ListMasters(c.Request.Context(), c.Query("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, masters, "Master options fetched successfully")
}

func (cc *CatalogController) CreateMaster(c *gin.Context) {
	var req request_models.MasterOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	master, err := cc.catalogService.CreateMaster(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, master, "Master option created successfully")
}

func (cc *CatalogController) DeleteMaster(c *gin.Context) {
	if err := cc.catalogService.DeleteMaster(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Master option deleted successfully")
}

func (cc *CatalogController) ListSubMasters(c *gin.Context) {
	subs, err := cc.catalogService.ListSubMasters(c.Request.Context(), c.Query("master_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, subs, "Sub master options fetched successfully")
}

func (cc *CatalogController) CreateSubMaster(c *gin.Context) {
	var req request_models.SubMasterOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sub, err := cc.catalogService.CreateSubMaster(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sub, "Sub master option created successfully")
}

func (cc *CatalogController) DeleteSubMaster(c *gin.Context) {
	if err := cc.catalogService.DeleteSubMaster(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Sub master option deleted successfully")
}

func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := cc.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product created successfully")
}

func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	var req request_models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := cc.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, product, "Product updated successfully")
}

func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	if err := cc.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Product deleted successfully")
}

func (cc *CatalogController) AddVariant(c *gin.Context) {
	var req request_models.VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	variant, err := cc.catalogService.AddVariant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, variant, "Variant created successfully")
}
