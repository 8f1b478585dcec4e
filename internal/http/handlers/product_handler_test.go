package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{}
	r.GET("/products/:id", handler.GetProduct)

	req, _ := http.NewRequest("GET", "/products/not-a-number", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_UpdateProduct_EmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{}
	r.PUT("/products/:id", handler.UpdateProduct)

	req, _ := http.NewRequest("PUT", "/products/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_UpdateProduct_RejectsBadFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{}
	r.PUT("/products/:id", handler.UpdateProduct)

	cases := map[string]string{
		"immutable id":        `{"id": 42}`,
		"immutable url":       `{"url": "new-url"}`,
		"immutable createdAt": `{"createdAt": "2024-01-01T00:00:00Z"}`,
		"unknown field":       `{"in_stock": false}`,
	}

	for name, body := range cases {
		req, _ := http.NewRequest("PUT", "/products/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestProductHandler_DeleteProduct_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ProductHandler{}
	r.DELETE("/products/:id", handler.DeleteProduct)

	req, _ := http.NewRequest("DELETE", "/products/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
