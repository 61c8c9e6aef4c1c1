package main

import (
	"log"

	_ "tradein_valuation/docs"
	"tradein_valuation/internal/adapter/http/routes"
	"tradein_valuation/internal/config"
	"tradein_valuation/internal/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Trade-in Valuation API
// @version         1.0
// @description     Device trade-in pricing and order identification backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.Must(logging.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.OutputPath,
	})
	defer func() { _ = logger.Sync() }()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("failed to run the application", zap.Error(err))
	}
}
