package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prabhashc/shopbill/config"
	billrepo "github.com/prabhashc/shopbill/internal/billing/repository"
	billusecase "github.com/prabhashc/shopbill/internal/billing/usecase"
	catrepo "github.com/prabhashc/shopbill/internal/catalog/repository"
	catusecase "github.com/prabhashc/shopbill/internal/catalog/usecase"
	"github.com/prabhashc/shopbill/internal/cli"
	"github.com/prabhashc/shopbill/internal/invoice"
	"github.com/prabhashc/shopbill/pkg/database"
	"github.com/prabhashc/shopbill/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.Load()

	// 2. Initialize Logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Open the store
	db, err := database.NewSQLite(&database.Config{Path: cfg.SQLite.Path})
	if err != nil {
		appLogger.Fatal("could not open store", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("store opened", zap.String("path", cfg.SQLite.Path))

	// 4. Initialize Repositories
	catalogRepo := catrepo.NewSQLiteRepository(db)
	billingRepo := billrepo.NewSQLiteRepository(db)

	// 5. Initialize UseCases
	catalogUC := catusecase.NewCatalogUseCase(catalogRepo, cfg.Billing.LowStockThreshold, appLogger)
	billingUC := billusecase.NewBillingUseCase(catalogRepo, billingRepo, cfg.Billing.RecentBillLimit, appLogger)

	// 6. Invoice renderer and menu
	renderer := invoice.NewRenderer(&cfg.Invoice, appLogger)
	handler := cli.NewHandler(catalogUC, billingUC, renderer, os.Stdin, os.Stdout, appLogger)

	if err := handler.Run(context.Background()); err != nil {
		appLogger.Fatal("session aborted", zap.Error(err))
	}
}
