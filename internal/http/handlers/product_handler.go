package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/velora-store/admin-backend/internal/models"
	"github.com/velora-store/admin-backend/internal/repository"
)

// ProductHandler предоставляет CRUD по каталогу товаров.
type ProductHandler struct {
	products *repository.ProductRepository
}

// NewProductHandler создаёт хэндлер.
func NewProductHandler(products *repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts обрабатывает GET /products с пагинацией, фильтром по категории
// и поиском по названию.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	products, total, err := h.products.List(c.Request.Context(), repository.ProductFilter{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"total":   total,
		"page":    page,
		"pages":   int64(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetProduct обрабатывает GET /products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "id товара должен быть числом"})
		return
	}

	product, err := h.products.GetByNumericID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "товар не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// CreateProduct обрабатывает POST /products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if product.URL == "" || product.ID == 0 || product.Title == "" || product.AltText == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "укажите обязательные поля товара (url, id, title, altText)",
		})
		return
	}

	if err := h.products.Create(c.Request.Context(), &product); err != nil {
		if errors.Is(err, repository.ErrProductExists) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "товар с таким id или url уже существует"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    product,
		"message": "товар создан",
	})
}

// UpdateProduct обрабатывает PUT /products/:id — частичное обновление полей.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "id товара должен быть числом"})
		return
	}

	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "тело запроса должно содержать обновляемые поля"})
		return
	}

	// Ключи запроса уходят в $set как есть, поэтому пропускаем только
	// известные изменяемые поля схемы: id, url и метки времени защищены.
	for key := range fields {
		if !models.IsUpdatableProductField(key) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("поле %q нельзя обновить", key),
			})
			return
		}
	}

	updated, err := h.products.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "товар не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "товар обновлён",
	})
}

// DeleteProduct обрабатывает DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "id товара должен быть числом"})
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "товар не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "товар удалён"})
}
