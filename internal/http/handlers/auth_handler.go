package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velora-store/admin-backend/internal/http/middleware"
	"github.com/velora-store/admin-backend/internal/repository"
	"github.com/velora-store/admin-backend/internal/service"
	"github.com/velora-store/admin-backend/internal/validation"
)

// AuthHandler предоставляет HTTP слой для входа по коду и регистрации.
type AuthHandler struct {
	auth *service.AuthService
	otp  *service.OTPService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService, otp *service.OTPService) *AuthHandler {
	return &AuthHandler{auth: auth, otp: otp}
}

// CheckUser обрабатывает POST /auth/checkUser: проверяет email и,
// если пользователь существует, отправляет ему одноразовый код.
func (h *AuthHandler) CheckUser(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "укажите email",
		})
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"message":       err.Error(),
			"invalidDomain": true,
		})
		return
	}

	status, err := h.otp.RequestChallenge(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	switch status {
	case service.ChallengeUnregistered:
		// Не ошибка: клиент уводит пользователя на регистрацию.
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"emailExist":    false,
			"message":       "email не зарегистрирован, пройдите регистрацию",
			"invalidDomain": false,
		})
	case service.ChallengeDispatchFailed:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":       false,
			"emailExist":    true,
			"message":       "не удалось отправить письмо с кодом, повторите запрос",
			"invalidDomain": false,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"emailExist":    true,
			"message":       "код отправлен на email",
			"invalidDomain": false,
		})
	}
}

// VerifyOTP обрабатывает POST /auth/verifyOTP: проверяет код и выдаёт токен.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"status":  "missing_fields",
			"message": "укажите email и код",
		})
		return
	}

	result, err := h.otp.VerifyChallenge(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	switch result.Status {
	case service.VerifyExpiredOrNotFound:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"status":  string(result.Status),
			"message": "код истёк или не найден, запросите новый",
		})
	case service.VerifyMaxAttempts:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"status":  string(result.Status),
			"message": "превышено число попыток, запросите новый код",
		})
	case service.VerifyMismatch:
		c.JSON(http.StatusBadRequest, gin.H{
			"success":           false,
			"status":            string(result.Status),
			"message":           "неверный код",
			"remainingAttempts": result.Remaining,
		})
	case service.VerifyUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"status":  string(result.Status),
			"message": "пользователь не найден",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  string(result.Status),
			"message": "код подтверждён",
			"token":   result.Token,
		})
	}
}

// Me обрабатывает GET /auth/me: отдаёт профиль владельца токена.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), c.GetString(middleware.ContextUserIDKey))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "пользователь не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// Register обрабатывает POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email             string `json:"email" binding:"required"`
		Password          string `json:"password" binding:"required"`
		FirstName         string `json:"firstName" binding:"required"`
		LastName          string `json:"lastName" binding:"required"`
		Country           string `json:"country"`
		City              string `json:"city"`
		DateOfBirth       string `json:"dateOfBirth"`
		Gender            string `json:"gender"`
		PhoneCountryCode  string `json:"phoneCountryCode"`
		PhoneNo           string `json:"phoneNo"`
		WhatsappSubscribe bool   `json:"whatsappSubscribe"`
		Role              string `json:"role"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "укажите все обязательные поля (email, firstName, lastName, password)",
		})
		return
	}

	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "дата рождения должна быть в формате ГГГГ-ММ-ДД",
		})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:             req.Email,
		Password:          req.Password,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Country:           req.Country,
		City:              req.City,
		DateOfBirth:       dateOfBirth,
		Gender:            req.Gender,
		PhoneCountryCode:  req.PhoneCountryCode,
		PhoneNo:           req.PhoneNo,
		WhatsappSubscribe: req.WhatsappSubscribe,
		Role:              req.Role,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "пользователь зарегистрирован",
		"token":   result.Token,
		"_id":     result.User.ID.Hex(),
		"email":   result.User.Email,
		"role":    result.User.Role,
	})
}
