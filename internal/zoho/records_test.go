package zoho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybridge/tallybridge/internal/diag"
	"github.com/tallybridge/tallybridge/internal/model"
)

func TestAccounts(t *testing.T) {
	rows := []map[string]string{
		{"Account ID": "A1", "Account Name": "Consulting Income", "Account Type": "Income",
			"Opening Balance": "1,000.00", "Account Status": "Active"},
		{"Account ID": "A2", "Account Name": "Old Loan", "Account Type": "Liability",
			"Account Status": "Inactive"},
	}

	accounts := Accounts(rows, diag.New(nil))
	require.Len(t, accounts, 2)

	assert.Equal(t, "Consulting Income", accounts[0].Name)
	assert.Equal(t, "Income", accounts[0].SourceType)
	assert.Equal(t, "1000", accounts[0].OpeningBalance.String())
	assert.True(t, accounts[0].Active)
	assert.False(t, accounts[1].Active)
}

func TestParties_CustomerFields(t *testing.T) {
	rows := []map[string]string{{
		"Contact ID": "C1", "Display Name": "Acme Traders",
		"EmailID": "accounts@acme.example", "Phone": "022-1234", "MobilePhone": "98200-55555",
		"GST Identification Number (GSTIN)": "27AAAAA0000A1Z5",
		"GST Treatment":                     "Regular",
		"Opening Balance":                   "500.00",
		"Billing Address":                   "12 Marine Drive", "Billing City": "Mumbai",
	}}

	parties := Parties(model.PartyCustomer, rows, diag.New(nil))
	require.Len(t, parties, 1)

	p := parties[0]
	assert.Equal(t, model.PartyCustomer, p.Kind)
	assert.Equal(t, "Acme Traders", p.Name)
	assert.Equal(t, "27AAAAA0000A1Z5", p.TaxID)
	assert.Equal(t, "Regular", p.GSTTreatment)
	assert.Equal(t, "98200-55555", p.Mobile)
	assert.Equal(t, "Mumbai", p.Billing.City)
	assert.Equal(t, "500", p.OpeningBalance.String())
	assert.Empty(t, p.Bank.AccountNumber)
}

func TestParties_VendorBankDetails(t *testing.T) {
	rows := []map[string]string{{
		"Contact ID": "V1", "Display Name": "Bolt Supplies",
		"Vendor Bank Account Number": "123456", "Vendor Bank Name": "HDFC", "Vendor Bank Code": "HDFC0000123",
	}}

	parties := Parties(model.PartyVendor, rows, diag.New(nil))
	require.Len(t, parties, 1)
	assert.Equal(t, model.PartyVendor, parties[0].Kind)
	assert.Equal(t, "123456", parties[0].Bank.AccountNumber)
	assert.Equal(t, "HDFC0000123", parties[0].Bank.IFSC)
}

func TestTransactionRows_Invoices(t *testing.T) {
	rows := []map[string]string{{
		"Invoice ID": "90300000079421", "Invoice Number": "INV-100", "Invoice Date": "2025-04-01",
		"Customer ID": "C1", "Customer Name": "Acme Traders", "Notes": "April order",
		"Total": "118.00", "Round Off": "0.00",
		"Item Name": "Widget", "Account": "Widget Income", "Item Total": "100.00",
		"CGST Rate %": "9", "CGST": "9.00", "SGST Rate %": "9", "SGST": "9.00",
	}}

	got := TransactionRows(RecordInvoices, rows, diag.New(nil))
	require.Len(t, got, 1)

	sr := got[0]
	assert.Equal(t, "90300000079421", sr.NaturalKey)
	assert.Equal(t, "INV-100", sr.Number)
	assert.Equal(t, 2025, sr.Date.Year())
	assert.Equal(t, "C1", sr.PartyID)
	assert.Equal(t, "April order", sr.Narration)
	assert.Equal(t, "118", sr.Total.String())
	assert.Equal(t, "Widget", sr.Item)
	assert.Equal(t, "100", sr.Amount.String())
	assert.Equal(t, "9", sr.CGSTAmount.String())
	assert.True(t, sr.IGSTAmount.IsZero())
}

func TestTransactionRows_MissingDocumentIDDropped(t *testing.T) {
	log := diag.New(nil)
	rows := []map[string]string{
		{"Invoice Number": "INV-100", "Total": "118.00"},
		{"Invoice ID": "2", "Invoice Number": "INV-101", "Total": "50.00"},
	}

	got := TransactionRows(RecordInvoices, rows, log)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].NaturalKey)
	assert.Equal(t, 1, log.CountBySeverity(diag.SeverityWarn))
}

func TestTransactionRows_CustomerPayments(t *testing.T) {
	rows := []map[string]string{{
		"CustomerPayment ID": "P1", "Payment Number": "PMT-7", "Date": "2025-04-08",
		"CustomerID": "C1", "Customer Name": "Acme Traders",
		"Amount": "118.00", "Invoice Number": "INV-100", "Deposit To": "HDFC Bank",
	}}

	got := TransactionRows(RecordCustomerPayments, rows, diag.New(nil))
	require.Len(t, got, 1)
	assert.Equal(t, "INV-100", got[0].RefNumber)
	assert.Equal(t, "HDFC Bank", got[0].CounterLedger)
	assert.Equal(t, "118", got[0].Total.String())
}

func TestTransactionRows_Journals(t *testing.T) {
	rows := []map[string]string{
		{"Journal Number": "JRN-1", "Journal Date": "2025-04-11", "Account": "Rent", "Debit": "500.00", "Credit": ""},
		{"Journal Number": "JRN-1", "Journal Date": "2025-04-11", "Account": "HDFC Bank", "Debit": "", "Credit": "500.00"},
	}

	got := TransactionRows(RecordJournals, rows, diag.New(nil))
	require.Len(t, got, 2)
	assert.Equal(t, "JRN-1", got[0].NaturalKey)
	assert.Equal(t, "500", got[0].Debit.String())
	assert.True(t, got[0].Credit.IsZero())
	assert.Equal(t, "500", got[1].Credit.String())
}

func TestTransactionRows_UnknownRecordType(t *testing.T) {
	got := TransactionRows(RecordChartOfAccounts, []map[string]string{{"x": "y"}}, diag.New(nil))
	assert.Nil(t, got)
}
