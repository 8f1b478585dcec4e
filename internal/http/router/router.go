package router

import (
	"github.com/gin-gonic/gin"

	"github.com/velora-store/admin-backend/internal/config"
	"github.com/velora-store/admin-backend/internal/http/handlers"
	"github.com/velora-store/admin-backend/internal/http/middleware"
	"github.com/velora-store/admin-backend/internal/service"
)

// SetupRouter собирает gin.Engine со всеми маршрутами приложения.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	geoHandler *handlers.GeoHandler,
	healthHandler *handlers.HealthHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/admin/auth")
	{
		authGroup.POST("/checkUser", authHandler.CheckUser)
		authGroup.POST("/verifyOTP", authHandler.VerifyOTP)
		authGroup.POST("/register", authHandler.Register)
		authGroup.GET("/me", middleware.AuthMiddleware(tokenManager), authHandler.Me)
	}

	// Чтение каталога публичное, изменения только для админов.
	products := api.Group("/admin/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)

		protected := products.Group("")
		protected.Use(middleware.AuthMiddleware(tokenManager), middleware.RequireAdmin())
		{
			protected.POST("", productHandler.CreateProduct)
			protected.PUT("/:id", productHandler.UpdateProduct)
			protected.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	api.GET("/countryStateCity/getCountryStateCity", geoHandler.GetCountryStateCity)

	return r
}
