package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_CheckUser_MissingEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{}
	r.POST("/auth/checkUser", handler.CheckUser)

	w := postJSON(t, r, "/auth/checkUser", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_CheckUser_InvalidEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{}
	r.POST("/auth/checkUser", handler.CheckUser)

	w := postJSON(t, r, "/auth/checkUser", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"invalidDomain":true`)
}

func TestAuthHandler_VerifyOTP_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{}
	r.POST("/auth/verifyOTP", handler.VerifyOTP)

	for _, body := range []string{`{}`, `{"email":"a@b.com"}`, `{"otp":"123456"}`} {
		w := postJSON(t, r, "/auth/verifyOTP", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "missing_fields")
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{}
	r.POST("/auth/register", handler.Register)

	w := postJSON(t, r, "/auth/register", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_BadDateOfBirth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{}
	r.POST("/auth/register", handler.Register)

	w := postJSON(t, r, "/auth/register", `{
		"email":"a@b.com",
		"password":"password123",
		"firstName":"A",
		"lastName":"B",
		"dateOfBirth":"01-05-1990"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
