package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

// JWTMiddleware validates bearer tokens and loads identity into the context.
type JWTMiddleware struct {
	secret string
}

// NewJWTMiddleware creates a new JWTMiddleware.
func NewJWTMiddleware(secret string) *JWTMiddleware {
	return &JWTMiddleware{secret: secret}
}

// Handle returns a middleware requiring any authenticated user.
func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.claims(c)
		if !ok {
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminOnly returns a middleware requiring an authenticated admin.
func (m *JWTMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.claims(c)
		if !ok {
			return
		}
		if claims.Role != models.RoleAdmin {
			utils.Error(c, 403, "FORBIDDEN", "Bu işlem için yönetici yetkisi gereklidir")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func (m *JWTMiddleware) claims(c *gin.Context) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.Error(c, 401, "UNAUTHORIZED", "Yetkilendirme başlığı eksik")
		c.Abort()
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.Error(c, 401, "UNAUTHORIZED", "Geçersiz yetkilendirme başlığı")
		c.Abort()
		return nil, false
	}

	claims, err := utils.ValidateJWT(m.secret, parts[1])
	if err != nil {
		utils.Error(c, 401, "INVALID_TOKEN", "Oturum geçersiz veya süresi dolmuş")
		c.Abort()
		return nil, false
	}
	return claims, true
}
