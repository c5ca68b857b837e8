package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVoucherSum(t *testing.T) {
	v := Voucher{Entries: []LedgerEntry{
		{Ledger: "Acme Traders", Amount: decimal.NewFromFloat(-118.00)},
		{Ledger: "Sales", Amount: decimal.NewFromFloat(100.00)},
		{Ledger: "Output CGST", Amount: decimal.NewFromFloat(9.00)},
		{Ledger: "Output SGST", Amount: decimal.NewFromFloat(9.00)},
	}}
	assert.True(t, v.Sum().IsZero())

	v.Entries = append(v.Entries, LedgerEntry{Ledger: "Round Off", Amount: decimal.NewFromFloat(0.05)})
	assert.Equal(t, "0.05", v.Sum().String())
}

func TestVoucherSum_Empty(t *testing.T) {
	assert.True(t, Voucher{}.Sum().IsZero())
}
