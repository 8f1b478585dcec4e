package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora-store/admin-backend/internal/config"
	"github.com/velora-store/admin-backend/internal/db"
	httpHandlers "github.com/velora-store/admin-backend/internal/http/handlers"
	httpRouter "github.com/velora-store/admin-backend/internal/http/router"
	"github.com/velora-store/admin-backend/internal/logger"
	"github.com/velora-store/admin-backend/internal/repository"
	"github.com/velora-store/admin-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
	}
	logger.Init(logLevel, cfg.Env)

	// Подключение к базе и индексы.
	client, err := db.NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeDisconnect(client)

	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("main: ошибка создания индексов: %v", err)
	}

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.JWTExpire)
	emailService := service.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	// Репозитории.
	userRepo := repository.NewUserRepository(database)
	otpRepo := repository.NewOTPRepository(database)
	productRepo := repository.NewProductRepository(database)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	otpService := service.NewOTPService(userRepo, otpRepo, emailService, tokenManager, cfg.OTPTTL, cfg.OTPMaxAttempts)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService, otpService)
	productHandler := httpHandlers.NewProductHandler(productRepo)
	geoHandler := httpHandlers.NewGeoHandler()
	healthHandler := httpHandlers.NewHealthHandler(client)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, productHandler, geoHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeDisconnect закрывает соединение с базой.
func safeDisconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
