package zoho

import (
	"github.com/tallybridge/tallybridge/internal/diag"
	"github.com/tallybridge/tallybridge/internal/model"
	"github.com/tallybridge/tallybridge/internal/normalize"
)

// Accounts builds chart-of-accounts records from raw rows.
func Accounts(rows []map[string]string, log *diag.Log) []model.Account {
	accounts := make([]model.Account, 0, len(rows))
	for _, raw := range rows {
		row := normalize.Normalize(chartOfAccountsSchema, raw, log)
		accounts = append(accounts, model.Account{
			ID:             row.String("Account ID"),
			Name:           row.String("Account Name"),
			SourceType:     row.String("Account Type"),
			OpeningBalance: row.Number("Opening Balance"),
			Currency:       row.String("Currency"),
			Description:    row.String("Description"),
			Active:         row.String("Account Status") != "Inactive",
		})
	}
	return accounts
}

// Parties builds customer or vendor records from raw rows.
func Parties(kind model.PartyKind, rows []map[string]string, log *diag.Log) []model.Party {
	recordType := RecordContacts
	if kind == model.PartyVendor {
		recordType = RecordVendors
	}
	schema := partySchema(recordType)

	parties := make([]model.Party, 0, len(rows))
	for _, raw := range rows {
		row := normalize.Normalize(schema, raw, log)
		p := model.Party{
			ID:             row.String("Contact ID"),
			Name:           row.String("Display Name"),
			Kind:           kind,
			TaxID:          row.String("GST Identification Number (GSTIN)"),
			GSTTreatment:   row.String("GST Treatment"),
			Email:          row.String("EmailID"),
			Phone:          row.String("Phone"),
			Mobile:         row.String("MobilePhone"),
			OpeningBalance: row.Number("Opening Balance"),
			Billing:        address(row, "Billing"),
			Shipping:       address(row, "Shipping"),
		}
		if kind == model.PartyVendor {
			p.Bank = model.BankDetails{
				AccountNumber: row.String("Vendor Bank Account Number"),
				BankName:      row.String("Vendor Bank Name"),
				IFSC:          row.String("Vendor Bank Code"),
			}
		}
		parties = append(parties, p)
	}
	return parties
}

func address(row normalize.Row, prefix string) model.Address {
	return model.Address{
		Line1:   row.String(prefix + " Address"),
		Line2:   row.String(prefix + " Street2"),
		City:    row.String(prefix + " City"),
		State:   row.String(prefix + " State"),
		Country: row.String(prefix + " Country"),
		Pincode: row.String(prefix + " Code"),
	}
}

// txColumns says where each SourceRow field comes from for one transaction
// record type. Empty names mean the export has no such column.
type txColumns struct {
	schema     normalize.Schema
	key        string
	number     string
	date       string
	partyID    string
	partyName  string
	total      string
	adjustment string
	ref        string
	narration  string
	counter    string
	item       string
	account    string
	amount     string
	taxes      bool // CGST/SGST/IGST rate+amount columns present
	journal    bool // Debit/Credit columns instead of line items
}

var txColumnsByType = map[RecordType]txColumns{
	RecordInvoices: {
		schema: invoiceSchema,
		key:    "Invoice ID", number: "Invoice Number", date: "Invoice Date",
		partyID: "Customer ID", partyName: "Customer Name",
		total: "Total", adjustment: "Round Off", narration: "Notes",
		item: "Item Name", account: "Account", amount: "Item Total", taxes: true,
	},
	RecordBills: {
		schema: billSchema,
		key:    "Bill ID", number: "Bill Number", date: "Bill Date",
		partyName: "Vendor Name",
		total:     "Total", adjustment: "Adjustment", narration: "Vendor Notes",
		item: "Item Name", account: "Account", amount: "Item Total", taxes: true,
	},
	RecordCustomerPayments: {
		schema: customerPaymentSchema,
		key:    "CustomerPayment ID", number: "Payment Number", date: "Date",
		partyID: "CustomerID", partyName: "Customer Name",
		total: "Amount", ref: "Invoice Number", narration: "Description",
		counter: "Deposit To",
	},
	RecordVendorPayments: {
		schema: vendorPaymentSchema,
		key:    "VendorPayment ID", number: "Payment Number", date: "Date",
		partyName: "Vendor Name",
		total:     "Amount", ref: "Bill Number", narration: "Description",
		counter: "Paid Through",
	},
	RecordCreditNotes: {
		schema: creditNoteSchema,
		key:    "CreditNotes ID", number: "Credit Note Number", date: "Credit Note Date",
		partyID: "Customer ID", partyName: "Customer Name",
		total: "Total", ref: "Associated Invoice Number", narration: "Reason",
		item: "Item Name", account: "Account", amount: "Item Total", taxes: true,
	},
	RecordJournals: {
		schema: journalSchema,
		key:    "Journal Number", number: "Journal Number", date: "Journal Date",
		total: "Total", narration: "Notes", account: "Account", journal: true,
	},
}

// TransactionRows normalizes raw transaction rows for one record type.
// Rows without a document id are dropped with a diagnostic; everything
// else is recoverable downstream.
func TransactionRows(t RecordType, rows []map[string]string, log *diag.Log) []model.SourceRow {
	cols, ok := txColumnsByType[t]
	if !ok {
		return nil
	}

	out := make([]model.SourceRow, 0, len(rows))
	for _, raw := range rows {
		row := normalize.Normalize(cols.schema, raw, log)

		key := row.String(cols.key)
		if key == "" {
			log.Add(diag.SeverityWarn, diag.CodeMissingRequiredField, string(t), cols.key,
				"row has no document id, dropped")
			continue
		}

		sr := model.SourceRow{
			NaturalKey: key,
			Number:     row.String(cols.number),
			Date:       row.Date(cols.date),
			PartyName:  row.String(cols.partyName),
			Total:      row.Number(cols.total),
			Narration:  row.String(cols.narration),
		}
		if cols.partyID != "" {
			sr.PartyID = row.String(cols.partyID)
		}
		if cols.adjustment != "" {
			sr.Adjustment = row.Number(cols.adjustment)
		}
		if cols.ref != "" {
			sr.RefNumber = row.String(cols.ref)
		}
		if cols.counter != "" {
			sr.CounterLedger = row.String(cols.counter)
		}
		if cols.item != "" {
			sr.Item = row.String(cols.item)
			sr.Amount = row.Number(cols.amount)
		}
		if cols.account != "" {
			sr.Account = row.String(cols.account)
		}
		if cols.taxes {
			sr.CGSTRate = row.Number("CGST Rate %")
			sr.CGSTAmount = row.Number("CGST")
			sr.SGSTRate = row.Number("SGST Rate %")
			sr.SGSTAmount = row.Number("SGST")
			sr.IGSTRate = row.Number("IGST Rate %")
			sr.IGSTAmount = row.Number("IGST")
		}
		if cols.journal {
			sr.Debit = row.Number("Debit")
			sr.Credit = row.Number("Credit")
		}
		out = append(out, sr)
	}
	return out
}
