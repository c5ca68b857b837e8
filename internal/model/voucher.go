package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationKind says whether a bill allocation originates a reference or
// settles an existing one.
type AllocationKind string

const (
	AllocationNew     AllocationKind = "New Ref"
	AllocationAgainst AllocationKind = "Agst Ref"
)

// BillAllocation links a ledger entry to a document number for bill-wise
// tracking. Amount always equals the signed amount of the entry it is
// attached to.
type BillAllocation struct {
	Ref    string
	Kind   AllocationKind
	Amount decimal.Decimal
}

// LedgerEntry is one signed line within a voucher. Positive = debit.
type LedgerEntry struct {
	Ledger     string
	Amount     decimal.Decimal
	Allocation *BillAllocation
}

// Voucher is one balanced double-entry transaction ready for import.
type Voucher struct {
	Type       VoucherType
	NaturalKey string
	GUID       string
	Date       time.Time
	Number     string
	Party      string // party ledger name, empty for journals
	Narration  string
	Entries    []LedgerEntry
}

// Sum returns the signed total of all entries. Zero for a balanced voucher.
func (v Voucher) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, e := range v.Entries {
		total = total.Add(e.Amount)
	}
	return total
}
