package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/pricing"
	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// QuoteHandler exposes quote intake and management endpoints.
type QuoteHandler struct {
	quotes *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quotes *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Create handles POST /api/teklif.
func (h *QuoteHandler) Create(c *gin.Context) {
	var raw pricing.RawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	quote, err := h.quotes.Create(raw)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Teklif talebiniz alındı", quote)
}

// Calculate handles POST /api/teklif/hesapla. It prices a submission without
// persisting it, so the client preview always matches the stored result.
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var raw pricing.RawRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	breakdown, err := h.quotes.Preview(raw)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Fiyat hesaplandı", gin.H{"fiyatDetay": breakdown})
}

// List handles GET /api/teklif.
func (h *QuoteHandler) List(c *gin.Context) {
	durum := models.QuoteStatus(c.Query("durum"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit < 0 {
		limit = 0
	}

	quotes, err := h.quotes.List(durum, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Teklifler listelendi", gin.H{
		"teklifler": quotes,
		"toplam":    len(quotes),
	})
}

// Get handles GET /api/teklif/:id.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	quote, err := h.quotes.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Teklif bulundu", quote)
}

// UpdateStatus handles PUT /api/teklif/:id/durum.
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Durum models.QuoteStatus `json:"durum"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	quote, err := h.quotes.UpdateStatus(id, req.Durum)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Teklif durumu güncellendi", quote)
}

// Delete handles DELETE /api/teklif/:id.
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.quotes.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Teklif silindi", nil)
}
