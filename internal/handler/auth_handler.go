package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/service"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/kayit.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Geçersiz istek gövdesi")
		return
	}

	user, token, err := h.auth.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Kayıt başarılı", gin.H{
		"kullanici": user,
		"token":     token,
	})
}

// Login handles POST /api/auth/giris.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		KullaniciAdi string `json:"kullaniciAdi" binding:"required"`
		Sifre        string `json:"sifre" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Kullanıcı adı ve şifre zorunludur")
		return
	}

	user, token, err := h.auth.Login(req.KullaniciAdi, req.Sifre)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Giriş başarılı", gin.H{
		"kullanici": user,
		"token":     token,
	})
}

// Me handles GET /api/auth/ben.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Me(c.GetInt("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Kullanıcı bilgileri", user)
}

// Logout handles POST /api/auth/cikis. Tokens are stateless, the client
// discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.Success(c, 200, "Çıkış yapıldı", nil)
}

// ChangePassword handles PUT /api/auth/sifre.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req struct {
		MevcutSifre string `json:"mevcutSifre" binding:"required"`
		YeniSifre   string `json:"yeniSifre" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Mevcut şifre ve yeni şifre zorunludur")
		return
	}

	if err := h.auth.ChangePassword(c.GetInt("user_id"), req.MevcutSifre, req.YeniSifre); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Şifre güncellendi", nil)
}
