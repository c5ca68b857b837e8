package voucher

import (
	"github.com/shopspring/decimal"

	"github.com/tallybridge/tallybridge/internal/catalog"
	"github.com/tallybridge/tallybridge/internal/model"
)

// taxEntries derives tax-ledger entries from a line's rate/amount pairs:
// the two home-state components (CGST, SGST) and the inter-state component
// (IGST). Only pairs with a nonzero amount produce an entry. The sign
// follows the line direction, which already accounts for reversal types.
func (a *Assembler) taxEntries(row model.SourceRow, dir catalog.Direction, sign decimal.Decimal) []model.LedgerEntry {
	pairs := []struct {
		tax    catalog.TaxType
		amount decimal.Decimal
	}{
		{catalog.TaxCGST, row.CGSTAmount},
		{catalog.TaxSGST, row.SGSTAmount},
		{catalog.TaxIGST, row.IGSTAmount},
	}

	var entries []model.LedgerEntry
	for _, p := range pairs {
		if p.amount.IsZero() {
			continue
		}
		entries = append(entries, model.LedgerEntry{
			Ledger: a.catalog.TaxLedger(p.tax, dir),
			Amount: p.amount.Mul(sign),
		})
	}
	return entries
}
