package controllers

import (
	"net/http"

	"refurbmart/internal/models/request_models"
	"refurbmart/internal/services"
	"refurbmart/pkg/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	inventoryService services.InventoryServiceInterface
}

func NewInventoryController(inventoryService services.InventoryServiceInterface) *InventoryController {
	return &InventoryController{
		inventoryService: inventoryService,
	}
}

// AdjustStock godoc
// @Summary Set a variant's stock level (staff only)
// @Description Stock is clamped to a non-negative integer; a zero stock always clears the in-stock flag
// @Tags Inventory
// @Accept json
// @Produce json
// @Param variantId path string true "Variant ID"
// @Param request body request_models.AdjustStockRequest true "Stock payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/inventory/{variantId} [put]
func (i *InventoryController) AdjustStock(c *gin.Context) {
	var req request_models.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	variant, err := i.inventoryService.AdjustStock(c.Request.Context(), c.Param("variantId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, variant, "Stock updated successfully")
}
