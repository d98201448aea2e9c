package main

import (
	"fmt"

	"sales_ledger/api"
	"sales_ledger/internal/config"
	"sales_ledger/internal/logging"
	"sales_ledger/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		panic(fmt.Errorf("error building logger: %w", err))
	}
	defer logger.Sync()

	salesService := sales.NewService(sales.NewLocalStorage(), logger)
	if _, err := salesService.LoadFile(cfg.LedgerFile); err != nil {
		logger.Fatal("could not load ledger", zap.String("path", cfg.LedgerFile), zap.Error(err))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.InitRoutes(r, salesService, logger, sales.ReportQuery{
		Seller:  cfg.ReportSeller,
		Manager: cfg.ReportManager,
		MonthA:  cfg.MonthA(),
		MonthB:  cfg.MonthB(),
	})

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
