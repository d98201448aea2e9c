package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status values with a meaning for the reports. Any other status is neither.
const (
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Sale represents one row of the sales ledger.
type Sale struct {
	Number        string          `json:"number"`
	SaleDate      Date            `json:"sale_date"`
	DeliveryDate  Date            `json:"delivery_date"`
	Region        string          `json:"region"`
	Estate        string          `json:"estate"`
	Manager       string          `json:"manager"`
	Seller        string          `json:"seller"`
	Department    string          `json:"department"`
	PaymentMethod string          `json:"payment_method"`
	Value         decimal.Decimal `json:"value"`
	Status        string          `json:"status"`
}

// IsCompleted reports whether the sale was concluded.
func (s Sale) IsCompleted() bool {
	return s.Status == StatusCompleted
}

// IsCancelled reports whether the sale was cancelled.
func (s Sale) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// ValueFloat returns an approximation of Value. Totals never use it.
func (s Sale) ValueFloat() float64 {
	return s.Value.InexactFloat64()
}

const dateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day without a time-of-day component.
type Date struct {
	time.Time
}

// NewDate returns the calendar day y-m-d.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d is a later day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// DaysUntil counts the days in [d, other). It is negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	// Both values sit on UTC midnight, so every day is exactly 86400s.
	// Unix seconds, unlike time.Duration, do not clamp on multi-century spans.
	return int((other.Unix() - d.Unix()) / secondsPerDay)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(`"`+dateLayout+`"`, s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}
