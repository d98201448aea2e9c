package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sales_ledger/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// salesHandler holds the sales service and implements HTTP handlers for ledger reports.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
	defaults     sales.ReportQuery
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger, defaults sales.ReportQuery) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
		defaults:     defaults,
	}
}

var errInvalidMonth = errors.New("month must be between 1 and 12")

func parseMonth(raw string, fallback time.Month) (time.Month, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < int(time.January) || n > int(time.December) {
		return 0, errInvalidMonth
	}
	return time.Month(n), nil
}

func (h *salesHandler) internalError(ctx *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.String("path", ctx.FullPath()), zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// handleGetSale handles the GET /sales/:number endpoint.
func (h *salesHandler) handleGetSale(ctx *gin.Context) {
	sale, err := h.salesService.Sale(ctx.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		default:
			h.internalError(ctx, "failed to read sale", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, sale)
}

// handleReport handles the GET /reports endpoint.
func (h *salesHandler) handleReport(ctx *gin.Context) {
	q := h.defaults
	if seller, ok := ctx.GetQuery("seller"); ok {
		q.Seller = seller
	}
	if manager, ok := ctx.GetQuery("manager"); ok {
		q.Manager = manager
	}

	var err error
	if q.MonthA, err = parseMonth(ctx.Query("month_a"), h.defaults.MonthA); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "month_a: " + err.Error()})
		return
	}
	if q.MonthB, err = parseMonth(ctx.Query("month_b"), h.defaults.MonthB); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "month_b: " + err.Error()})
		return
	}

	report, err := h.salesService.Report(ctx.Request.Context(), q)
	if err != nil {
		h.internalError(ctx, "failed to build report", err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

func (h *salesHandler) handleTotals(ctx *gin.Context) {
	totals, err := h.salesService.Totals()
	if err != nil {
		h.internalError(ctx, "failed to compute totals", err)
		return
	}

	ctx.JSON(http.StatusOK, totals)
}

// handleDates answers 422 when the ledger is empty, since there is no first sale.
func (h *salesHandler) handleDates(ctx *gin.Context) {
	span, err := h.salesService.Dates()
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrEmptyLedger):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.internalError(ctx, "failed to compute sale dates", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, span)
}

func (h *salesHandler) handleSellerTotal(ctx *gin.Context) {
	seller := ctx.Param("seller")
	total, err := h.salesService.TotalBySeller(seller)
	if err != nil {
		h.internalError(ctx, "failed to compute seller total", err)
		return
	}

	ctx.JSON(http.StatusOK, sales.SellerTotal{Seller: seller, Total: total})
}

func (h *salesHandler) handleManagerCount(ctx *gin.Context) {
	manager := ctx.Param("manager")
	count, err := h.salesService.CountByManager(manager)
	if err != nil {
		h.internalError(ctx, "failed to count manager sales", err)
		return
	}

	ctx.JSON(http.StatusOK, sales.ManagerCount{Manager: manager, Count: count})
}

func (h *salesHandler) handleMonthsTotal(ctx *gin.Context) {
	a, err := parseMonth(ctx.Query("a"), h.defaults.MonthA)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "a: " + err.Error()})
		return
	}
	b, err := parseMonth(ctx.Query("b"), h.defaults.MonthB)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "b: " + err.Error()})
		return
	}

	total, err := h.salesService.TotalByMonths(a, b)
	if err != nil {
		h.internalError(ctx, "failed to compute months total", err)
		return
	}

	ctx.JSON(http.StatusOK, sales.MonthsTotal{MonthA: a, MonthB: b, Total: total})
}

func (h *salesHandler) handleDepartmentRanking(ctx *gin.Context) {
	ranking, err := h.salesService.DepartmentRanking()
	if err != nil {
		h.internalError(ctx, "failed to rank departments", err)
		return
	}

	ctx.JSON(http.StatusOK, ranking)
}

func (h *salesHandler) handlePaymentMethodRanking(ctx *gin.Context) {
	ranking, err := h.salesService.PaymentMethodRanking()
	if err != nil {
		h.internalError(ctx, "failed to rank payment methods", err)
		return
	}

	ctx.JSON(http.StatusOK, ranking)
}

// handleBestSellers handles GET /reports/best-sellers. limit defaults to the top 3.
func (h *salesHandler) handleBestSellers(ctx *gin.Context) {
	limit := sales.BestSellersLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	ranking, err := h.salesService.TopSellers(limit)
	if err != nil {
		h.internalError(ctx, "failed to rank sellers", err)
		return
	}

	ctx.JSON(http.StatusOK, ranking)
}
