package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// UserHandler exposes profile and admin user management endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UpdateProfile handles PUT /api/auth/profil for the authenticated user.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req service.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	user, err := h.users.UpdateProfile(c.GetInt("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Profil güncellendi", user)
}

// List handles GET /api/kullanicilar.
func (h *UserHandler) List(c *gin.Context) {
	page, limit := pageQuery(c)

	users, total, err := h.users.List(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithPagination(c, 200, "Kullanıcılar listelendi", users, page, limit, total)
}

// Get handles GET /api/kullanicilar/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Kullanıcı bulundu", user)
}

// Update handles PUT /api/kullanicilar/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req service.AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	user, err := h.users.AdminUpdate(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Kullanıcı güncellendi", user)
}

// ToggleStatus handles PUT /api/kullanicilar/:id/durum.
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	// An admin locking themselves out is always a mistake.
	if id == c.GetInt("user_id") {
		utils.Error(c, 400, "SELF_TOGGLE", "Kendi hesabınızı devre dışı bırakamazsınız")
		return
	}

	user, err := h.users.ToggleStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Kullanıcı durumu güncellendi", user)
}

// Delete handles DELETE /api/kullanicilar/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if id == c.GetInt("user_id") {
		utils.Error(c, 400, "SELF_DELETE", "Kendi hesabınızı silemezsiniz")
		return
	}

	if err := h.users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Kullanıcı silindi", nil)
}
