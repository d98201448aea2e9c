package api

import (
	"net/http"

	"sales_ledger/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers the ledger report endpoints on the given Gin engine.
// defaults fills the report parameters a request leaves out.
func InitRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger, defaults sales.ReportQuery) {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := NewSalesHandler(salesService, logger, defaults)

	e.GET("/sales/:number", h.handleGetSale)

	reports := e.Group("/reports")
	reports.GET("", h.handleReport)
	reports.GET("/totals", h.handleTotals)
	reports.GET("/dates", h.handleDates)
	reports.GET("/sellers/:seller/total", h.handleSellerTotal)
	reports.GET("/managers/:manager/count", h.handleManagerCount)
	reports.GET("/months", h.handleMonthsTotal)
	reports.GET("/rankings/departments", h.handleDepartmentRanking)
	reports.GET("/rankings/payment-methods", h.handlePaymentMethodRanking)
	reports.GET("/best-sellers", h.handleBestSellers)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
