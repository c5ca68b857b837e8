// Package zoho reads Zoho Books export files into header-keyed rows and
// builds the normalized records the migration engine consumes. Exact source
// column names live here and nowhere else.
package zoho

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tallybridge/tallybridge/internal/model"
)

// RecordType names one export file's record type.
type RecordType string

const (
	RecordChartOfAccounts  RecordType = "chart_of_accounts"
	RecordContacts         RecordType = "contacts"
	RecordVendors          RecordType = "vendors"
	RecordInvoices         RecordType = "invoices"
	RecordBills            RecordType = "bills"
	RecordCustomerPayments RecordType = "customer_payments"
	RecordVendorPayments   RecordType = "vendor_payments"
	RecordCreditNotes      RecordType = "credit_notes"
	RecordJournals         RecordType = "journals"
)

// exportFiles maps record types to the base file names Zoho backups use.
var exportFiles = map[RecordType]string{
	RecordChartOfAccounts:  "Chart_of_Accounts",
	RecordContacts:         "Contacts",
	RecordVendors:          "Vendors",
	RecordInvoices:         "Invoice",
	RecordBills:            "Bill",
	RecordCustomerPayments: "Customer_Payment",
	RecordVendorPayments:   "Vendor_Payment",
	RecordCreditNotes:      "Credit_Note",
	RecordJournals:         "Journal",
}

// VoucherTypeFor returns the voucher type a transaction record type maps
// to, and false for master record types.
func VoucherTypeFor(t RecordType) (model.VoucherType, bool) {
	switch t {
	case RecordInvoices:
		return model.TypeSales, true
	case RecordBills:
		return model.TypePurchase, true
	case RecordCustomerPayments:
		return model.TypeReceipt, true
	case RecordVendorPayments:
		return model.TypePayment, true
	case RecordCreditNotes:
		return model.TypeCreditNote, true
	case RecordJournals:
		return model.TypeJournal, true
	}
	return "", false
}

// RowReader reads one tabular export into header-keyed rows.
type RowReader interface {
	Read(r io.Reader) ([]map[string]string, error)
	Ext() string
}

// readers holds the supported file formats.
var readers = []RowReader{CSVReader{}, XLSXReader{}}

// Locate finds the export file for a record type under dir, trying each
// supported extension. Missing files are not an error: a record type with
// no export simply has no rows.
func Locate(dir string, t RecordType) (string, bool) {
	base, ok := exportFiles[t]
	if !ok {
		return "", false
	}
	for _, r := range readers {
		path := filepath.Join(dir, base+r.Ext())
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// ReadFile reads an export file into rows, picking the reader by extension.
func ReadFile(path string) ([]map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, reader := range readers {
		if reader.Ext() != ext {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		rows, err := reader.Read(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("unsupported file type %q", ext)
}

// FileInfo describes one export file found in a source directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan lists the readable export files under dir.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading source dir: %w", err)
	}

	exts := make(map[string]bool)
	for _, r := range readers {
		exts[r.Ext()] = true
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !exts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
