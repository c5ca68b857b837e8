// Package voucher turns normalized transaction rows into balanced
// double-entry vouchers: one voucher per source document, party entry with
// bill-wise allocation, line and tax entries, and a rounding entry for any
// residual. Positive amounts are debits.
package voucher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tallybridge/tallybridge/internal/catalog"
	"github.com/tallybridge/tallybridge/internal/diag"
	"github.com/tallybridge/tallybridge/internal/guid"
	"github.com/tallybridge/tallybridge/internal/model"
)

// Assembler builds vouchers against a read-only catalog.
type Assembler struct {
	catalog *catalog.Catalog
	log     *diag.Log
}

// NewAssembler creates an Assembler. The catalog must be fully built before
// any Assemble call; it is never mutated here.
func NewAssembler(c *catalog.Catalog, log *diag.Log) *Assembler {
	return &Assembler{catalog: c, log: log}
}

// Assemble groups rows by their natural key and emits one voucher per
// group. Rows that cannot be attributed to a party (non-journal types) drop
// the whole transaction with a diagnostic.
func (a *Assembler) Assemble(t model.VoucherType, rows []model.SourceRow) []model.Voucher {
	if t == model.TypeJournal {
		return a.assembleJournals(rows)
	}

	groups, order := groupByKey(rows)
	vouchers := make([]model.Voucher, 0, len(order))
	for _, key := range order {
		group := groups[key]
		header := group[0]

		party := a.catalog.PartyName(header.PartyID, header.PartyName)
		if party == "" {
			a.log.Add(diag.SeverityWarn, diag.CodeMissingRequiredField, string(t), key,
				"transaction has no resolvable party name, dropped")
			continue
		}

		v := model.Voucher{
			Type:       t,
			NaturalKey: key,
			GUID:       guid.ForVoucher(t, key),
			Date:       header.Date,
			Number:     header.Number,
			Party:      party,
			Narration:  header.Narration,
		}
		v.Entries = a.entries(t, typeRules[t], party, header, group)
		vouchers = append(vouchers, v)
	}
	return vouchers
}

func (a *Assembler) entries(t model.VoucherType, r rules, party string, header model.SourceRow, group []model.SourceRow) []model.LedgerEntry {
	partyAmount := header.Total.Mul(decimal.NewFromInt(-r.lineSign))
	partyEntry := model.LedgerEntry{
		Ledger:     party,
		Amount:     partyAmount,
		Allocation: a.allocation(r.allocKind, header, partyAmount),
	}

	if r.settlement {
		counter := header.CounterLedger
		if counter == "" {
			counter = a.catalog.LedgerName(catalog.RoleCash)
		}
		counterEntry := model.LedgerEntry{Ledger: counter, Amount: partyAmount.Neg()}
		if r.counterFirst {
			return []model.LedgerEntry{counterEntry, partyEntry}
		}
		return []model.LedgerEntry{partyEntry, counterEntry}
	}

	entries := []model.LedgerEntry{partyEntry}
	lineSign := decimal.NewFromInt(r.lineSign)
	lines := 0
	for _, row := range group {
		// Blank item identifiers mark header-only duplicate rows from the
		// flattened export; they contribute no entries.
		if row.Item == "" {
			continue
		}
		ledger := row.Account
		if ledger == "" {
			ledger = a.catalog.DefaultLedger(t)
		}
		entries = append(entries, model.LedgerEntry{Ledger: ledger, Amount: row.Amount.Mul(lineSign)})
		entries = append(entries, a.taxEntries(row, r.taxDir, lineSign)...)
		lines++
	}

	if lines == 0 {
		// A document with only header rows still becomes a two-entry
		// voucher against the type's default ledger.
		if !header.Total.IsZero() {
			entries = append(entries, model.LedgerEntry{
				Ledger: a.catalog.DefaultLedger(t),
				Amount: partyAmount.Neg(),
			})
		}
		return entries
	}

	if residual := sum(entries).Neg(); !residual.IsZero() {
		entries = append(entries, model.LedgerEntry{
			Ledger: a.catalog.LedgerName(catalog.RoleRoundOff),
			Amount: residual,
		})
	}
	return entries
}

// allocation attaches a bill-wise reference to the party entry. New
// references use the document's own number; settlements reference the
// related document and are omitted when no reference is present.
func (a *Assembler) allocation(kind model.AllocationKind, header model.SourceRow, amount decimal.Decimal) *model.BillAllocation {
	ref := header.RefNumber
	if kind == model.AllocationNew {
		ref = header.Number
		if ref == "" {
			ref = header.NaturalKey
		}
	}
	if ref == "" {
		return nil
	}
	return &model.BillAllocation{Ref: ref, Kind: kind, Amount: amount}
}

// assembleJournals maps each row of a journal group to one entry: positive
// for the debit column, negative for the credit column.
func (a *Assembler) assembleJournals(rows []model.SourceRow) []model.Voucher {
	groups, order := groupByKey(rows)
	vouchers := make([]model.Voucher, 0, len(order))
	for _, key := range order {
		group := groups[key]
		header := group[0]

		v := model.Voucher{
			Type:       model.TypeJournal,
			NaturalKey: key,
			GUID:       guid.ForVoucher(model.TypeJournal, key),
			Date:       header.Date,
			Number:     header.Number,
			Narration:  header.Narration,
		}
		for _, row := range group {
			if row.Debit.IsZero() && row.Credit.IsZero() {
				continue
			}
			if row.Account == "" {
				a.log.Add(diag.SeverityWarn, diag.CodeMissingRequiredField, string(model.TypeJournal), key,
					fmt.Sprintf("journal row with amount %s has no ledger name, skipped", row.Debit.Add(row.Credit).StringFixed(2)))
				continue
			}
			amount := row.Debit
			if amount.IsZero() {
				amount = row.Credit.Neg()
			}
			v.Entries = append(v.Entries, model.LedgerEntry{Ledger: row.Account, Amount: amount})
		}
		vouchers = append(vouchers, v)
	}
	return vouchers
}

// groupByKey buckets rows by natural key, preserving first-seen order.
func groupByKey(rows []model.SourceRow) (map[string][]model.SourceRow, []string) {
	groups := make(map[string][]model.SourceRow)
	var order []string
	for _, row := range rows {
		if _, seen := groups[row.NaturalKey]; !seen {
			order = append(order, row.NaturalKey)
		}
		groups[row.NaturalKey] = append(groups[row.NaturalKey], row)
	}
	return groups, order
}

func sum(entries []model.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
