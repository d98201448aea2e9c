package sales

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// Ledger column names as they appear in the header row.
const (
	ColNumber        = "num_venda"
	ColSaleDate      = "data_venda"
	ColDeliveryDate  = "data_entrega"
	ColRegion        = "regiao"
	ColEstate        = "uf"
	ColManager       = "gestor"
	ColSeller        = "vendedor"
	ColDepartment    = "departamento"
	ColPaymentMethod = "forma_pagamento"
	ColValue         = "valor_venda"
	ColStatus        = "status"
)

// Separator is the ledger field delimiter.
const Separator = ';'

const ledgerDateLayout = "02/01/2006"

var requiredColumns = []string{
	ColNumber, ColSaleDate, ColDeliveryDate, ColRegion, ColEstate, ColManager,
	ColSeller, ColDepartment, ColPaymentMethod, ColValue, ColStatus,
}

// ParseFile opens path and parses it as a ledger.
func ParseFile(path string) ([]Sale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an ISO-8859-1, semicolon separated ledger with a header row.
// Rows come back in source order. The first bad row aborts the whole parse.
func Parse(r io.Reader) ([]Sale, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrSourceUnavailable)
	}

	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.Comma = Separator
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrSourceUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrSourceUnavailable, err)
	}

	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	ledger := make([]Sale, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &RowError{Line: pe.Line, Err: fmt.Errorf("%w: %w", ErrSourceUnavailable, pe.Err)}
			}
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}

		line, _ := cr.FieldPos(0)
		sale, err := parseRecord(record, index, line)
		if err != nil {
			return nil, err
		}
		ledger = append(ledger, sale)
	}

	return ledger, nil
}

func indexColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = cleanHeader(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSourceUnavailable, col)
		}
	}
	return index, nil
}

// cleanHeader drops surrounding space and a byte order mark, which shows up
// as "ï»¿" once UTF-8 bytes are read as Latin-1.
func cleanHeader(name string) string {
	name = strings.TrimPrefix(name, "\u00ef\u00bb\u00bf")
	return strings.ToLower(strings.TrimSpace(name))
}

func parseRecord(record []string, index map[string]int, line int) (Sale, error) {
	cell := func(col string) string {
		return strings.TrimSpace(record[index[col]])
	}

	saleDate, err := parseDate(cell(ColSaleDate))
	if err != nil {
		return Sale{}, &RowError{Line: line, Column: ColSaleDate, Value: cell(ColSaleDate), Err: ErrMalformedDate}
	}

	var deliveryDate Date
	if raw := cell(ColDeliveryDate); raw != "" {
		deliveryDate, err = parseDate(raw)
		if err != nil {
			return Sale{}, &RowError{Line: line, Column: ColDeliveryDate, Value: raw, Err: ErrMalformedDate}
		}
	}

	value, err := decimal.NewFromString(cell(ColValue))
	if err != nil {
		return Sale{}, &RowError{Line: line, Column: ColValue, Value: cell(ColValue), Err: ErrMalformedAmount}
	}

	return Sale{
		Number:        cell(ColNumber),
		SaleDate:      saleDate,
		DeliveryDate:  deliveryDate,
		Region:        cell(ColRegion),
		Estate:        cell(ColEstate),
		Manager:       cell(ColManager),
		Seller:        cell(ColSeller),
		Department:    cell(ColDepartment),
		PaymentMethod: cell(ColPaymentMethod),
		Value:         value,
		Status:        cell(ColStatus),
	}, nil
}

func parseDate(s string) (Date, error) {
	t, err := time.Parse(ledgerDateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}
