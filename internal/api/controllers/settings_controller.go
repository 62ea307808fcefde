package controllers

import (
	"net/http"

	"refurbmart/internal/models/request_models"
	"refurbmart/internal/services"
	"refurbmart/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func (s *SettingsController) GetSettings(c *gin.Context) {
	settings, err := s.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, settings, "Settings fetched successfully")
}

// UpdateSettings godoc
// @Summary Update store pricing settings (staff only)
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body request_models.UpdateSettingsRequest true "Settings payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/settings [put]
func (s *SettingsController) UpdateSettings(c *gin.Context) {
	var req request_models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	settings, err := s.settingsService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, settings, "Settings updated successfully")
}
