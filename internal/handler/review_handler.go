package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// ReviewHandler exposes customer review endpoints.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /api/yorumlar. Only approved reviews are returned.
func (h *ReviewHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)

	reviews, total, err := h.reviews.List(true, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Yorumlar listelendi", reviews, page, limit, total)
}

// ListAll handles GET /api/yorumlar/tumu for moderation, including unapproved
// reviews.
func (h *ReviewHandler) ListAll(c *gin.Context) {
	page, limit := pageQuery(c)

	reviews, total, err := h.reviews.List(false, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Yorumlar listelendi", reviews, page, limit, total)
}

// Create handles POST /api/yorumlar. New reviews await moderation.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	review, err := h.reviews.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Yorumunuz alındı, onay sonrası yayınlanacak", review)
}

// Approve handles PUT /api/yorumlar/:id/onayla.
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	review, err := h.reviews.Approve(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Yorum onaylandı", review)
}

// Delete handles DELETE /api/yorumlar/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.reviews.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Yorum silindi", nil)
}

// Stats handles GET /api/yorumlar/istatistik.
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.reviews.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "İstatistikler getirildi", stats)
}
