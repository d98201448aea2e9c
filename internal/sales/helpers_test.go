package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const ledgerHeader = "num_venda;data_venda;data_entrega;regiao;uf;gestor;vendedor;departamento;forma_pagamento;valor_venda;status\n"

func newSale(number, seller, department, payment, value, status string, saleDate Date) Sale {
	return Sale{
		Number:        number,
		SaleDate:      saleDate,
		Region:        "Sudeste",
		Estate:        "SP",
		Manager:       "Elenice Mendes",
		Seller:        seller,
		Department:    department,
		PaymentMethod: payment,
		Value:         decimal.RequireFromString(value),
		Status:        status,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func july(day int) Date {
	return NewDate(2024, time.July, day)
}
