package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atolyemobilya/mobilya-api/internal/models"
	"github.com/atolyemobilya/mobilya-api/internal/utils"
)

const testSecret = "test-secret"

func setupProtectedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewJWTMiddleware(testSecret)
	router := gin.New()
	router.GET("/me", mw.Handle(), func(c *gin.Context) {
		c.JSON(200, gin.H{"userId": c.GetInt("user_id"), "role": c.GetString("role")})
	})
	router.GET("/admin", mw.AdminOnly(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func request(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, role string, expiry time.Duration) string {
	t.Helper()
	tok, err := utils.GenerateJWT(testSecret, 42, "test", role, expiry)
	require.NoError(t, err)
	return tok
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	router := setupProtectedRouter(t)
	assert.Equal(t, 401, request(router, "/me", "").Code)
}

func TestJWTMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := setupProtectedRouter(t)
	assert.Equal(t, 401, request(router, "/me", "Basic abc").Code)
	assert.Equal(t, 401, request(router, "/me", "Bearer not-a-token").Code)
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	router := setupProtectedRouter(t)
	assert.Equal(t, 401, request(router, "/me", "Bearer "+token(t, models.RoleCustomer, -time.Minute)).Code)
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	router := setupProtectedRouter(t)
	w := request(router, "/me", "Bearer "+token(t, models.RoleCustomer, time.Hour))
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestAdminOnlyRejectsCustomerRole(t *testing.T) {
	router := setupProtectedRouter(t)
	assert.Equal(t, 403, request(router, "/admin", "Bearer "+token(t, models.RoleCustomer, time.Hour)).Code)
}

func TestAdminOnlyAcceptsAdminRole(t *testing.T) {
	router := setupProtectedRouter(t)
	assert.Equal(t, 200, request(router, "/admin", "Bearer "+token(t, models.RoleAdmin, time.Hour)).Code)
}
