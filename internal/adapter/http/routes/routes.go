package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tradein_valuation/docs" // swagger docs registration
	"tradein_valuation/internal/adapter/http/handlers"
	"tradein_valuation/internal/adapter/persistence/repository"
	"tradein_valuation/internal/config"
	"tradein_valuation/internal/domain/geo"
	"tradein_valuation/internal/domain/pricing"
	"tradein_valuation/internal/infrastructure/database"
	"tradein_valuation/internal/infrastructure/notifications"
	"tradein_valuation/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// Run wires the service against DynamoDB and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	valuationHandler, err := buildValuationHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	router := NewRouter(logger, valuationHandler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the application: %w", err)
		}
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// NewRouter registers middlewares, swagger and the /v1 routes.
func NewRouter(logger *zap.Logger, valuationHandler *handlers.ValuationHandler) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addValuationRoutes(v1, valuationHandler)
	return router
}

func buildValuationHandler(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*handlers.ValuationHandler, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, logger)
	if err != nil {
		return nil, err
	}

	regions, err := geo.LoadRegionTable(cfg.Geo.RegionsFile)
	if err != nil {
		return nil, fmt.Errorf("load region table: %w", err)
	}

	valuationRepo := repository.NewValuationDynamoRepository(ddb, cfg.Tables.Valuations, logger)
	rulesRepo := repository.NewPricingRulesDynamoRepository(ddb, cfg.Tables.PricingRules)
	counterRepo := repository.NewSequenceCounterDynamoRepository(ddb, cfg.Tables.Counters, cfg.Sequence.CounterID)

	allocator := usecase.NewSequenceAllocator(counterRepo, usecase.SequenceAllocatorConfig{
		MaxAttempts: cfg.Sequence.MaxAttempts,
		BaseBackoff: cfg.Sequence.BaseBackoff,
		MaxBackoff:  cfg.Sequence.MaxBackoff,
	}, logger)
	engine := pricing.NewEngine(cfg.Pricing.PowerOffBrands, cfg.Pricing.PowerOffDeductionPercent)

	valuationUseCase := usecase.NewValuationUseCase(
		valuationRepo,
		usecase.NewRuleSetResolver(rulesRepo, logger),
		engine,
		usecase.NewOrderIDGenerator(regions, allocator, logger),
		notifications.NewLogNotifier(logger),
		logger,
	)
	return handlers.NewValuationHandler(valuationUseCase, logger), nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(loggingMiddleware(logger))
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}
