package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/velora-store/admin-backend/internal/models"
)

// TokenManager отвечает за выпуск и проверку JWT.
// Секрет и срок действия задаются конфигурацией процесса,
// токен связывает id пользователя и его роль.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate выпускает подписанный токен для пользователя.
func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID.Hex(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("token manager: не удалось подписать токен: %w", err)
	}

	return signed, nil
}

// Parse проверяет подпись токена и извлекает id пользователя и роль.
func (m *TokenManager) Parse(raw string) (string, string, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("token manager: неожиданный метод подписи %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !parsed.Valid {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", "", jwt.ErrTokenInvalidClaims
	}

	role, _ := claims["role"].(string)

	return userID, role, nil
}
