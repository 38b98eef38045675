package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// GalleryHandler exposes the completed-work showcase endpoints.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// List handles GET /api/galeri.
func (h *GalleryHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)
	kategori := c.Query("kategori")

	items, total, err := h.gallery.List(kategori, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Galeri listelendi", items, page, limit, total)
}

// Get handles GET /api/galeri/:id.
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.gallery.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Galeri öğesi bulundu", item)
}

// Create handles POST /api/galeri.
func (h *GalleryHandler) Create(c *gin.Context) {
	var req service.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	item, err := h.gallery.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Galeri öğesi oluşturuldu", item)
}

// Update handles PUT /api/galeri/:id.
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req service.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	item, err := h.gallery.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Galeri öğesi güncellendi", item)
}

// Delete handles DELETE /api/galeri/:id.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.gallery.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Galeri öğesi silindi", nil)
}
