package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// respondError maps service errors onto the response envelope. Unrecognized
// errors become a generic 500 with the detail kept in the log only.
func respondError(c *gin.Context, err error) {
	var ve utils.ValidationErrors
	if errors.As(err, &ve) {
		utils.ValidationError(c, ve)
		return
	}

	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.Error(c, 404, "NOT_FOUND", "Kayıt bulunamadı")
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Kullanıcı adı veya şifre hatalı")
	case errors.Is(err, utils.ErrAccountInactive):
		utils.Error(c, 403, "ACCOUNT_INACTIVE", "Hesabınız devre dışı bırakılmış")
	case errors.Is(err, utils.ErrInvalidToken):
		utils.Error(c, 401, "INVALID_TOKEN", "Oturum geçersiz veya süresi dolmuş")
	case errors.Is(err, utils.ErrForbidden):
		utils.Error(c, 403, "FORBIDDEN", "Bu işlem için yetkiniz yok")
	case errors.Is(err, utils.ErrDuplicateUsername):
		utils.Error(c, 409, "DUPLICATE_USERNAME", "Bu kullanıcı adı zaten kullanılıyor")
	case errors.Is(err, utils.ErrDuplicateEmail):
		utils.Error(c, 409, "DUPLICATE_EMAIL", "Bu e-posta adresi zaten kullanılıyor")
	case errors.Is(err, utils.ErrDuplicateCode):
		utils.Error(c, 409, "DUPLICATE_CODE", "Bu ürün kodu zaten kullanılıyor")
	case errors.Is(err, utils.ErrSettingsConflict):
		utils.Error(c, 409, "SETTINGS_EXISTS", "Fiyatlandırma ayarları zaten mevcut")
	case errors.Is(err, utils.ErrStatusLocked):
		utils.Error(c, 409, "STATUS_LOCKED", "Tamamlanmış veya iptal edilmiş kayıt düzenlenemez")
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.Error(c, 400, "INVALID_TRANSITION", "Geçersiz durum geçişi")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		msg := "Sunucu hatası"
		// Outside production the underlying error helps local debugging.
		if gin.Mode() != gin.ReleaseMode {
			msg = err.Error()
		}
		utils.Error(c, 500, "INTERNAL_ERROR", msg)
	}
}

// paramID parses the :id path parameter. On failure it writes a 400 response
// and returns false.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.Error(c, 400, "INVALID_ID", "Geçersiz kayıt numarası")
		return 0, false
	}
	return id, true
}

// pageQuery parses page/limit query parameters with sane bounds.
func pageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
