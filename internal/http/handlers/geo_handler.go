package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-store/admin-backend/internal/geo"
)

// GeoHandler отдаёт статический справочник стран и регионов.
type GeoHandler struct{}

// NewGeoHandler создаёт хэндлер.
func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// GetCountryStateCity обрабатывает GET /getCountryStateCity.
func (h *GeoHandler) GetCountryStateCity(c *gin.Context) {
	countries := geo.Countries()
	if len(countries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "справочник стран пуст"})
		return
	}

	c.JSON(http.StatusOK, countries)
}
