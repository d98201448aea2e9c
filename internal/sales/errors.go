package sales

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when the ledger source is missing, unreadable,
// empty or lacks a required column.
var ErrSourceUnavailable = errors.New("ledger source unavailable")

// ErrMalformedDate is returned when a date cell is not dd/MM/yyyy.
var ErrMalformedDate = errors.New("malformed date")

// ErrMalformedAmount is returned when a value cell is not a decimal number.
var ErrMalformedAmount = errors.New("malformed amount")

// ErrEmptyLedger is returned by queries that are undefined on an empty ledger.
var ErrEmptyLedger = errors.New("empty ledger")

// RowError locates a parse failure in the source. Err is one of the sentinels above.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: %v: %q", e.Line, e.Column, e.Err, e.Value)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
