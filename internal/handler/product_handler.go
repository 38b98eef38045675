package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// ProductHandler exposes catalog endpoints.
type ProductHandler struct {
	products *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/urunler.
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	kategori := c.Query("kategori")

	products, total, err := h.products.List(kategori, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Ürünler listelendi", products, page, limit, total)
}

// Get handles GET /api/urunler/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	product, err := h.products.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ürün bulundu", product)
}

// Create handles POST /api/urunler.
func (h *ProductHandler) Create(c *gin.Context) {
	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	product, err := h.products.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Ürün oluşturuldu", product)
}

// Update handles PUT /api/urunler/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	product, err := h.products.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ürün güncellendi", product)
}

// Delete handles DELETE /api/urunler/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ürün silindi", nil)
}
