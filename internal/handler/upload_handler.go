package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// UploadHandler exposes image upload endpoints.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload handles POST /api/yukle. Files arrive as the multipart field
// "resimler".
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz form verisi")
		return
	}

	saved, err := h.uploads.SaveImages(c.Request.Context(), form.File["resimler"])
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Dosyalar yüklendi", gin.H{"dosyalar": saved})
}

// Delete handles DELETE /api/yukle/:dosya.
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.uploads.Delete(c.Param("dosya")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Dosya silindi", nil)
}
