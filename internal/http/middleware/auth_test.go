package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-store/admin-backend/internal/models"
	"github.com/velora-store/admin-backend/internal/service"
)

func setupProtected(tokens *service.TokenManager, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/")
	group.Use(AuthMiddleware(tokens))
	if adminOnly {
		group.Use(RequireAdmin())
	}
	group.GET("/secure", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(ContextUserIDKey)})
	})
	return r
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	tokens := service.NewTokenManager("secret", time.Hour)
	r := setupProtected(tokens, false)

	req, _ := http.NewRequest("GET", "/secure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	tokens := service.NewTokenManager("secret", time.Hour)
	r := setupProtected(tokens, false)

	req, _ := http.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenManager("secret", time.Hour)
	r := setupProtected(tokens, false)

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	token, err := tokens.Generate(user)
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.Hex())
}

func TestRequireAdmin_ForbidsUserRole(t *testing.T) {
	tokens := service.NewTokenManager("secret", time.Hour)
	r := setupProtected(tokens, true)

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	token, err := tokens.Generate(user)
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	tokens := service.NewTokenManager("secret", time.Hour)
	r := setupProtected(tokens, true)

	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	token, err := tokens.Generate(user)
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
