package sales

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service loads a ledger into a Storage backend and answers report queries over it.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// ReportQuery carries the parameters of the report battery.
type ReportQuery struct {
	Seller  string     `json:"seller"`
	Manager string     `json:"manager"`
	MonthA  time.Month `json:"month_a"`
	MonthB  time.Month `json:"month_b"`
}

// Totals splits the ledger value by status.
type Totals struct {
	Completed decimal.Decimal `json:"completed"`
	Cancelled decimal.Decimal `json:"cancelled"`
	Other     decimal.Decimal `json:"other"`
	All       decimal.Decimal `json:"all"`
}

// DateSpan describes the first and last sale dates of a ledger.
type DateSpan struct {
	Earliest    Date `json:"earliest"`
	Latest      Date `json:"latest"`
	DaysBetween int  `json:"days_between"`
}

type SellerTotal struct {
	Seller string          `json:"seller"`
	Total  decimal.Decimal `json:"total"`
}

type ManagerCount struct {
	Manager string `json:"manager"`
	Count   int    `json:"count"`
}

type MonthsTotal struct {
	MonthA time.Month      `json:"month_a"`
	MonthB time.Month      `json:"month_b"`
	Total  decimal.Decimal `json:"total"`
}

// Report is the full battery of aggregates for one ledger snapshot.
// Dates is nil when the ledger is empty.
type Report struct {
	ID                   string       `json:"id"`
	GeneratedAt          time.Time    `json:"generated_at"`
	SalesCount           int          `json:"sales_count"`
	Totals               Totals       `json:"totals"`
	Dates                *DateSpan    `json:"dates"`
	Seller               SellerTotal  `json:"seller"`
	Manager              ManagerCount `json:"manager"`
	Months               MonthsTotal  `json:"months"`
	DepartmentRanking    []CountRank  `json:"department_ranking"`
	PaymentMethodRanking []CountRank  `json:"payment_method_ranking"`
	BestSellers          []ValueRank  `json:"best_sellers"`
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load parses r and replaces the stored ledger. It returns the number of sales loaded.
func (s *Service) Load(r io.Reader) (int, error) {
	ledger, err := Parse(r)
	if err != nil {
		s.logger.Error("failed to parse ledger", zap.Error(err))
		return 0, err
	}
	return s.store(ledger)
}

// LoadFile parses the ledger at path and replaces the stored ledger.
func (s *Service) LoadFile(path string) (int, error) {
	ledger, err := ParseFile(path)
	if err != nil {
		s.logger.Error("failed to parse ledger", zap.String("path", path), zap.Error(err))
		return 0, err
	}

	n, err := s.store(ledger)
	if err == nil {
		s.logger.Info("ledger loaded", zap.String("path", path), zap.Int("sales", n))
	}
	return n, err
}

func (s *Service) store(ledger []Sale) (int, error) {
	if err := s.storage.Set(ledger); err != nil {
		s.logger.Error("failed to store ledger", zap.Error(err))
		return 0, fmt.Errorf("failed to store ledger: %w", err)
	}
	return len(ledger), nil
}

func (s *Service) ledger() ([]Sale, error) {
	ledger, err := s.storage.GetAll()
	if err != nil {
		s.logger.Error("failed to get ledger from storage", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve ledger: %w", err)
	}
	return ledger, nil
}

// Sale returns the sale with the given number.
func (s *Service) Sale(number string) (Sale, error) {
	return s.storage.Read(number)
}

// Totals returns the ledger value split by status.
func (s *Service) Totals() (Totals, error) {
	ledger, err := s.ledger()
	if err != nil {
		return Totals{}, err
	}
	return totalsOf(ledger), nil
}

func totalsOf(ledger []Sale) Totals {
	return Totals{
		Completed: TotalCompletedSales(ledger),
		Cancelled: TotalCancelledSales(ledger),
		Other:     TotalOtherStatusSales(ledger),
		All:       TotalSales(ledger),
	}
}

// Dates returns the first and last sale dates. Returns ErrEmptyLedger when
// nothing is loaded.
func (s *Service) Dates() (DateSpan, error) {
	ledger, err := s.ledger()
	if err != nil {
		return DateSpan{}, err
	}
	return dateSpanOf(ledger)
}

func dateSpanOf(ledger []Sale) (DateSpan, error) {
	first, last, err := saleDateSpan(ledger)
	if err != nil {
		return DateSpan{}, err
	}
	return DateSpan{Earliest: first, Latest: last, DaysBetween: first.DaysUntil(last)}, nil
}

// TotalBySeller sums the sales of one seller.
func (s *Service) TotalBySeller(seller string) (decimal.Decimal, error) {
	ledger, err := s.ledger()
	if err != nil {
		return decimal.Zero, err
	}
	total := TotalSalesBySeller(ledger, seller)
	s.logger.Debug("seller total computed", zap.String("seller", seller), zap.Stringer("total", total))
	return total, nil
}

// CountByManager counts the sales of one manager.
func (s *Service) CountByManager(manager string) (int, error) {
	ledger, err := s.ledger()
	if err != nil {
		return 0, err
	}
	count := CountSalesByManager(ledger, manager)
	s.logger.Debug("manager count computed", zap.String("manager", manager), zap.Int("count", count))
	return count, nil
}

// TotalByMonths sums the sales made in month a or month b.
func (s *Service) TotalByMonths(a, b time.Month) (decimal.Decimal, error) {
	ledger, err := s.ledger()
	if err != nil {
		return decimal.Zero, err
	}
	return TotalSalesByMonths(ledger, a, b), nil
}

// DepartmentRanking ranks departments by number of sales.
func (s *Service) DepartmentRanking() ([]CountRank, error) {
	ledger, err := s.ledger()
	if err != nil {
		return nil, err
	}
	return RankingByDepartment(ledger), nil
}

// PaymentMethodRanking ranks payment methods by number of sales.
func (s *Service) PaymentMethodRanking() ([]CountRank, error) {
	ledger, err := s.ledger()
	if err != nil {
		return nil, err
	}
	return RankingByPaymentMethod(ledger), nil
}

// TopSellers ranks the n best sellers by sales value.
func (s *Service) TopSellers(n int) ([]ValueRank, error) {
	ledger, err := s.ledger()
	if err != nil {
		return nil, err
	}
	return TopSellers(ledger, n), nil
}

// Report computes the whole battery over a single snapshot of the ledger.
// The queries only read the snapshot, so they run concurrently.
func (s *Service) Report(ctx context.Context, q ReportQuery) (*Report, error) {
	ledger, err := s.ledger()
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		SalesCount:  len(ledger),
	}

	g, ctx := errgroup.WithContext(ctx)
	run := func(fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	run(func() { report.Totals = totalsOf(ledger) })
	run(func() {
		report.Seller = SellerTotal{Seller: q.Seller, Total: TotalSalesBySeller(ledger, q.Seller)}
	})
	run(func() {
		report.Manager = ManagerCount{Manager: q.Manager, Count: CountSalesByManager(ledger, q.Manager)}
	})
	run(func() {
		report.Months = MonthsTotal{MonthA: q.MonthA, MonthB: q.MonthB, Total: TotalSalesByMonths(ledger, q.MonthA, q.MonthB)}
	})
	run(func() { report.DepartmentRanking = RankingByDepartment(ledger) })
	run(func() { report.PaymentMethodRanking = RankingByPaymentMethod(ledger) })
	run(func() { report.BestSellers = BestSellers(ledger) })
	g.Go(func() error {
		span, err := dateSpanOf(ledger)
		if errors.Is(err, ErrEmptyLedger) {
			return nil
		}
		if err != nil {
			return err
		}
		report.Dates = &span
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to build report", zap.Error(err))
		return nil, err
	}

	s.logger.Info("report generated",
		zap.String("report_id", report.ID),
		zap.Int("sales_count", report.SalesCount),
		zap.Any("query", q),
	)
	return report, nil
}
