package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-store/admin-backend/internal/models"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*24*time.Hour)
	user := &models.User{
		ID:   primitive.NewObjectID(),
		Role: models.RoleAdmin,
	}

	token, err := manager.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, role, err := manager.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), userID)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestTokenManager_Claims(t *testing.T) {
	ttl := 30 * 24 * time.Hour
	manager := NewTokenManager("test-secret", ttl)
	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}

	token, err := manager.Generate(user)
	assert.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, models.RoleUser, claims["role"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(ttl.Seconds()), exp-iat)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	manager := NewTokenManager("right-secret", time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	token, err := manager.Generate(user)
	assert.NoError(t, err)

	other := NewTokenManager("wrong-secret", time.Hour)
	_, _, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)
	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}

	token, err := manager.Generate(user)
	assert.NoError(t, err)

	_, _, err = manager.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	_, _, err := manager.Parse("definitely.not.a.jwt")
	assert.Error(t, err)
}
