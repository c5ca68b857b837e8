package zoho

import "github.com/tallybridge/tallybridge/internal/normalize"

// Declared schemas per record type. Only columns the engine reads are
// declared; everything else passes through the normalizer untouched.

var chartOfAccountsSchema = normalize.Schema{
	RecordType: string(RecordChartOfAccounts),
	Fields: []normalize.Field{
		normalize.String("Account ID"),
		normalize.String("Account Name"),
		normalize.String("Account Code"),
		normalize.String("Account Type"),
		normalize.String("Account Status"),
		normalize.String("Description"),
		normalize.String("Currency"),
		normalize.String("Parent Account"),
		normalize.Number("Opening Balance"),
	},
}

func partySchema(t RecordType) normalize.Schema {
	fields := []normalize.Field{
		normalize.String("Contact ID"),
		normalize.String("Display Name"),
		normalize.String("Company Name"),
		normalize.String("EmailID"),
		normalize.String("Phone"),
		normalize.String("MobilePhone"),
		normalize.String("GST Identification Number (GSTIN)"),
		normalize.String("GST Treatment"),
		normalize.String("Status"),
		normalize.Number("Opening Balance"),
		normalize.String("Billing Address"),
		normalize.String("Billing Street2"),
		normalize.String("Billing City"),
		normalize.String("Billing State"),
		normalize.String("Billing Country"),
		normalize.String("Billing Code"),
		normalize.String("Shipping Address"),
		normalize.String("Shipping Street2"),
		normalize.String("Shipping City"),
		normalize.String("Shipping State"),
		normalize.String("Shipping Country"),
		normalize.String("Shipping Code"),
	}
	if t == RecordVendors {
		fields = append(fields,
			normalize.String("Vendor Bank Account Number"),
			normalize.String("Vendor Bank Name"),
			normalize.String("Vendor Bank Code"),
		)
	}
	return normalize.Schema{RecordType: string(t), Fields: fields}
}

var invoiceSchema = normalize.Schema{
	RecordType: string(RecordInvoices),
	Fields: []normalize.Field{
		normalize.String("Invoice ID"),
		normalize.String("Invoice Number"),
		normalize.Date("Invoice Date"),
		normalize.String("Customer ID"),
		normalize.String("Customer Name"),
		normalize.String("Notes"),
		normalize.Number("Total"),
		normalize.Number("Round Off"),
		normalize.String("Item Name"),
		normalize.String("Account"),
		normalize.Number("Item Total"),
		normalize.Number("CGST Rate %"),
		normalize.Number("CGST"),
		normalize.Number("SGST Rate %"),
		normalize.Number("SGST"),
		normalize.Number("IGST Rate %"),
		normalize.Number("IGST"),
	},
}

var billSchema = normalize.Schema{
	RecordType: string(RecordBills),
	Fields: []normalize.Field{
		normalize.String("Bill ID"),
		normalize.String("Bill Number"),
		normalize.Date("Bill Date"),
		normalize.String("Vendor Name"),
		normalize.String("Vendor Notes"),
		normalize.Number("Total"),
		normalize.Number("Adjustment"),
		normalize.String("Item Name"),
		normalize.String("Account"),
		normalize.Number("Item Total"),
		normalize.Number("CGST Rate %"),
		normalize.Number("CGST"),
		normalize.Number("SGST Rate %"),
		normalize.Number("SGST"),
		normalize.Number("IGST Rate %"),
		normalize.Number("IGST"),
	},
}

var customerPaymentSchema = normalize.Schema{
	RecordType: string(RecordCustomerPayments),
	Fields: []normalize.Field{
		normalize.String("CustomerPayment ID"),
		normalize.String("Payment Number"),
		normalize.Date("Date"),
		normalize.String("CustomerID"),
		normalize.String("Customer Name"),
		normalize.String("Description"),
		normalize.Number("Amount"),
		normalize.String("Invoice Number"),
		normalize.String("Deposit To"),
	},
}

var vendorPaymentSchema = normalize.Schema{
	RecordType: string(RecordVendorPayments),
	Fields: []normalize.Field{
		normalize.String("VendorPayment ID"),
		normalize.String("Payment Number"),
		normalize.Date("Date"),
		normalize.String("Vendor Name"),
		normalize.String("Description"),
		normalize.Number("Amount"),
		normalize.String("Bill Number"),
		normalize.String("Paid Through"),
	},
}

var creditNoteSchema = normalize.Schema{
	RecordType: string(RecordCreditNotes),
	Fields: []normalize.Field{
		normalize.String("CreditNotes ID"),
		normalize.String("Credit Note Number"),
		normalize.Date("Credit Note Date"),
		normalize.String("Customer ID"),
		normalize.String("Customer Name"),
		normalize.String("Reason"),
		normalize.Number("Total"),
		normalize.String("Associated Invoice Number"),
		normalize.String("Item Name"),
		normalize.String("Account"),
		normalize.Number("Item Total"),
		normalize.Number("CGST Rate %"),
		normalize.Number("CGST"),
		normalize.Number("SGST Rate %"),
		normalize.Number("SGST"),
		normalize.Number("IGST Rate %"),
		normalize.Number("IGST"),
	},
}

var journalSchema = normalize.Schema{
	RecordType: string(RecordJournals),
	Fields: []normalize.Field{
		normalize.String("Journal Number"),
		normalize.Date("Journal Date"),
		normalize.String("Account"),
		normalize.String("Notes"),
		normalize.Number("Debit"),
		normalize.Number("Credit"),
		normalize.Number("Total"),
	},
}
