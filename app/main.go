// Файл: main.go

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"employee-form/internal/repositories"
	"employee-form/internal/routes"
	"employee-form/pkg/config"
	apperrors "employee-form/pkg/errors"
	"employee-form/pkg/eventbus"
	applogger "employee-form/pkg/logger"
	appmiddleware "employee-form/pkg/middleware"
	"employee-form/pkg/utils"
	"employee-form/seeders"
)

func main() {
	// 1. Конфиг, логгер, echo
	cfg := config.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal Server Error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.RequestLogger(logger.Named("http")))

	// 3. Хранилище: Redis, если задан адрес, иначе память процесса
	cache := newCache(cfg, logger)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := seeders.SeedDesignations(seedCtx, repositories.NewDesignationRepository(cache), cfg.Designations.Seed, logger); err != nil {
		logger.Fatal("Ошибка наполнения справочника должностей", zap.Error(err))
	}
	cancel()

	// 4. Роуты
	bus := eventbus.New(logger.Named("eventbus"))
	loggers := &routes.Loggers{
		Main:     logger,
		Auth:     logger.Named("auth"),
		Employee: logger.Named("employee"),
		Audit:    logger,
	}
	routes.InitRouter(e, cache, bus, loggers, cfg)

	// 5. Запуск и остановка
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Сервер остановлен")
}

func newCache(cfg *config.Config, logger *zap.Logger) repositories.CacheRepositoryInterface {
	if cfg.Redis.Address == "" {
		logger.Warn("REDIS_ADDRESS не задан: сессии и сотрудники хранятся в памяти процесса")
		return repositories.NewMemoryCacheRepository()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	return repositories.NewRedisCacheRepository(redisClient)
}
