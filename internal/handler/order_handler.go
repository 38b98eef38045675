package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// OrderHandler exposes order management endpoints.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/siparisler.
func (h *OrderHandler) Create(c *gin.Context) {
	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	order, err := h.orders.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Sipariş oluşturuldu", order)
}

// List handles GET /api/siparisler.
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	durum := models.OrderStatus(c.Query("durum"))

	orders, total, err := h.orders.List(durum, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Siparişler listelendi", orders, page, limit, total)
}

// Get handles GET /api/siparisler/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sipariş bulundu", order)
}

// Update handles PUT /api/siparisler/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req service.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	order, err := h.orders.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sipariş güncellendi", order)
}

// UpdateStatus handles PUT /api/siparisler/:id/durum.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req struct {
		Durum models.OrderStatus `json:"durum"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	order, err := h.orders.UpdateStatus(id, req.Durum)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sipariş durumu güncellendi", order)
}

// Delete handles DELETE /api/siparisler/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sipariş silindi", nil)
}

// Stats handles GET /api/siparisler/istatistik.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.orders.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "İstatistikler getirildi", gin.H{"durumlar": stats})
}
