// Command salesreport loads a sales ledger and prints the report battery.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"sales_ledger/internal/config"
	"sales_ledger/internal/logging"
	"sales_ledger/internal/sales"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	file := flag.String("file", cfg.LedgerFile, "path of the semicolon separated ledger")
	seller := flag.String("seller", cfg.ReportSeller, "seller to total")
	manager := flag.String("manager", cfg.ReportManager, "manager to count")
	monthA := flag.Int("month-a", cfg.ReportMonthA, "first month of the two-month total")
	monthB := flag.Int("month-b", cfg.ReportMonthB, "second month of the two-month total")
	flag.Parse()

	cfg.LedgerFile, cfg.ReportMonthA, cfg.ReportMonthB = *file, *monthA, *monthB
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The report goes to stdout; keep the log quiet unless asked otherwise.
	level := cfg.LogLevel
	if level == "info" {
		level = "warn"
	}
	logger, err := logging.New(level, cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	svc := sales.NewService(sales.NewLocalStorage(), logger)
	if _, err := svc.LoadFile(cfg.LedgerFile); err != nil {
		fmt.Fprintln(os.Stderr, "error loading ledger:", err)
		os.Exit(1)
	}

	report, err := svc.Report(context.Background(), sales.ReportQuery{
		Seller:  *seller,
		Manager: *manager,
		MonthA:  cfg.MonthA(),
		MonthB:  cfg.MonthB(),
	})
	if err != nil {
		logger.Error("report failed", zap.Error(err))
		os.Exit(1)
	}

	if err := printReport(os.Stdout, report); err != nil {
		fmt.Fprintln(os.Stderr, "error writing report:", err)
		os.Exit(1)
	}
}
