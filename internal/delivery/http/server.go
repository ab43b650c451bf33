package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/parking-registry/internal/config"
	"github.com/parking-registry/internal/delivery/http/handler"
	"github.com/parking-registry/internal/delivery/http/middleware"
	"github.com/parking-registry/internal/observability"
	"github.com/parking-registry/internal/pkg/errors"
	"github.com/parking-registry/internal/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer

	// Handlers
	parkingHandler *handler.ParkingHandler
	statsHandler   *handler.StatsHandler
	healthHandler  *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
	parkingHandler *handler.ParkingHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Parking Registry",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		metrics:        metrics,
		gatherer:       gatherer,
		parkingHandler: parkingHandler,
		statsHandler:   statsHandler,
		healthHandler:  healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics(s.metrics))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	api := s.app.Group("/api")

	api.Get("/health", s.healthHandler.Health)
	api.Get("/stats", s.statsHandler.GetStatistics)

	parkings := api.Group("/parkings", middleware.Auth(s.config.Auth, s.logger))
	parkings.Get("/", s.parkingHandler.List)
	parkings.Post("/", s.parkingHandler.Create)
	// nearest регистрируется раньше /:id
	parkings.Get("/nearest", s.parkingHandler.Nearest)
	parkings.Get("/:id", s.parkingHandler.Get)
	parkings.Put("/:id", s.parkingHandler.Update)
	parkings.Delete("/:id", s.parkingHandler.Delete)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки фреймворка (404 маршрута, 405, паника)
// в том же формате, что и ошибки хендлеров
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.AsAppError(err); ok {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
			return utils.SendError(c, errors.ErrInternalServer)
		}

		appErr := errors.New("HTTP_ERROR", err.Error(), code)
		if code == fiber.StatusNotFound {
			appErr = errors.New("ROUTE_NOT_FOUND", "Ruta no encontrada", code)
		}
		return utils.SendError(c, appErr)
	}
}
