package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies transactions on both sides of the migration.
type VoucherType string

const (
	TypeSales      VoucherType = "Sales"
	TypePurchase   VoucherType = "Purchase"
	TypeReceipt    VoucherType = "Receipt"
	TypePayment    VoucherType = "Payment"
	TypeCreditNote VoucherType = "Credit Note"
	TypeJournal    VoucherType = "Journal"
)

// SourceRow is one normalized row of a transaction export. Multi-line
// documents repeat the header fields on every row; the assembler groups
// rows by NaturalKey and reads header fields off the first row of each
// group.
type SourceRow struct {
	NaturalKey string // source document id, the grouping key
	Number     string // human document number
	Date       time.Time
	PartyID    string
	PartyName  string
	Total      decimal.Decimal // declared document total (zero for journals)
	Adjustment decimal.Decimal // source round-off / adjustment column
	RefNumber  string          // related document number for settlements
	Narration  string

	// CounterLedger is the deposit / paid-through ledger on receipt and
	// payment rows.
	CounterLedger string

	// Line item fields. Item is blank on header-only duplicate rows.
	Item       string
	Account    string // line revenue/expense ledger from the source row
	Amount     decimal.Decimal
	CGSTRate   decimal.Decimal
	CGSTAmount decimal.Decimal
	SGSTRate   decimal.Decimal
	SGSTAmount decimal.Decimal
	IGSTRate   decimal.Decimal
	IGSTAmount decimal.Decimal

	// Journal rows carry exactly one of Debit/Credit against Account.
	Debit  decimal.Decimal
	Credit decimal.Decimal
}
