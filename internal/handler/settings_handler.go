package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// SettingsHandler exposes the pricing configuration endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/ayarlar.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ayarlar getirildi", settings)
}

// Update handles PUT /api/ayarlar. Absent fields keep their prior value.
func (h *SettingsHandler) Update(c *gin.Context) {
	var patch models.PricingSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	settings, err := h.settings.Update(patch)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ayarlar güncellendi", settings)
}
