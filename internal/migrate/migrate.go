// Package migrate orchestrates a full migration run: read the source
// exports, build the master catalog, assemble and validate vouchers, and
// write the import files plus the migration log.
package migrate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/tallybridge/tallybridge/internal/catalog"
	"github.com/tallybridge/tallybridge/internal/config"
	"github.com/tallybridge/tallybridge/internal/diag"
	"github.com/tallybridge/tallybridge/internal/model"
	"github.com/tallybridge/tallybridge/internal/tallyxml"
	"github.com/tallybridge/tallybridge/internal/voucher"
	"github.com/tallybridge/tallybridge/internal/zoho"
)

// transactionOrder fixes the processing and output order of voucher types.
var transactionOrder = []zoho.RecordType{
	zoho.RecordInvoices,
	zoho.RecordBills,
	zoho.RecordCustomerPayments,
	zoho.RecordVendorPayments,
	zoho.RecordCreditNotes,
	zoho.RecordJournals,
}

// voucherFiles names the output file per voucher type.
var voucherFiles = map[model.VoucherType]string{
	model.TypeSales:      "tally_sales_vouchers.xml",
	model.TypePurchase:   "tally_purchase_vouchers.xml",
	model.TypeReceipt:    "tally_receipt_vouchers.xml",
	model.TypePayment:    "tally_payment_vouchers.xml",
	model.TypeCreditNote: "tally_credit_note_vouchers.xml",
	model.TypeJournal:    "tally_journal_vouchers.xml",
}

const mastersFile = "tally_ledgers.xml"

// VoucherCount is the voucher tally for one type, in processing order.
type VoucherCount struct {
	Type  model.VoucherType
	Count int
}

// Stats summarizes one migration run.
type Stats struct {
	Accounts   int
	Parties    int
	Groups     int
	Ledgers    int
	Vouchers   []VoucherCount
	Imbalances int
	Warnings   int
	Files      []string
}

// Runner executes migration runs against one workspace directory.
type Runner struct {
	workDir string
	cfg     *config.Config
	logger  *slog.Logger
	log     *diag.Log
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default().
func NewRunner(workDir string, cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		workDir: workDir,
		cfg:     cfg,
		logger:  logger,
		log:     diag.New(logger),
	}
}

// Run performs one full migration and returns its stats. Row-level problems
// become diagnostics, not errors; an error here means the workspace itself
// is unusable (missing directories, unreadable files, failed writes).
func (r *Runner) Run() (*Stats, error) {
	sourceDir := filepath.Join(r.workDir, r.cfg.Dirs.Source)
	outputDir := filepath.Join(r.workDir, r.cfg.Dirs.Output)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	files, err := zoho.Scan(sourceDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		r.logger.Warn("no export files found", "dir", sourceDir)
	}
	for _, f := range files {
		r.logger.Debug("found export file", "name", f.Name, "bytes", f.Size)
	}

	stats := &Stats{}

	cat, err := r.buildCatalog(sourceDir, stats)
	if err != nil {
		return nil, err
	}

	mastersPath := filepath.Join(outputDir, mastersFile)
	if err := r.writeFile(mastersPath, func(f *os.File) error {
		return tallyxml.WriteMasters(f, r.cfg.Company.Name, cat)
	}); err != nil {
		return nil, err
	}
	stats.Files = append(stats.Files, mastersPath)
	stats.Groups = len(cat.Groups)
	stats.Ledgers = len(cat.Accounts)

	epsilon := decimal.NewFromFloat(r.cfg.Balance.Epsilon)
	assembler := voucher.NewAssembler(cat, r.log)

	for _, recordType := range transactionOrder {
		voucherType, _ := zoho.VoucherTypeFor(recordType)

		path, ok := zoho.Locate(sourceDir, recordType)
		if !ok {
			r.logger.Debug("no export file", "record_type", string(recordType))
			continue
		}
		raw, err := zoho.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", recordType, err)
		}

		rows := zoho.TransactionRows(recordType, raw, r.log)
		vouchers := assembler.Assemble(voucherType, rows)
		imbalances := voucher.Validate(vouchers, epsilon, r.log)

		outPath := filepath.Join(outputDir, voucherFiles[voucherType])
		if err := r.writeFile(outPath, func(f *os.File) error {
			return tallyxml.WriteVouchers(f, r.cfg.Company.Name, vouchers)
		}); err != nil {
			return nil, err
		}

		stats.Files = append(stats.Files, outPath)
		stats.Vouchers = append(stats.Vouchers, VoucherCount{Type: voucherType, Count: len(vouchers)})
		stats.Imbalances += len(imbalances)
		r.logger.Info("vouchers written",
			"type", string(voucherType), "count", len(vouchers), "imbalanced", len(imbalances))
	}

	stats.Warnings = r.log.CountBySeverity(diag.SeverityWarn)
	if err := r.log.Append(r.workDir); err != nil {
		return nil, fmt.Errorf("writing migration log: %w", err)
	}
	return stats, nil
}

// buildCatalog reads the master exports and reconciles them. Missing master
// files are tolerated; the mandatory ledgers alone still make a usable
// catalog.
func (r *Runner) buildCatalog(sourceDir string, stats *Stats) (*catalog.Catalog, error) {
	rawAccounts, err := r.readOptional(sourceDir, zoho.RecordChartOfAccounts)
	if err != nil {
		return nil, err
	}
	accounts := zoho.Accounts(rawAccounts, r.log)

	rawContacts, err := r.readOptional(sourceDir, zoho.RecordContacts)
	if err != nil {
		return nil, err
	}
	parties := zoho.Parties(model.PartyCustomer, rawContacts, r.log)

	rawVendors, err := r.readOptional(sourceDir, zoho.RecordVendors)
	if err != nil {
		return nil, err
	}
	parties = append(parties, zoho.Parties(model.PartyVendor, rawVendors, r.log)...)

	stats.Accounts = len(accounts)
	stats.Parties = len(parties)

	builder := catalog.NewBuilder(r.log, r.cfg.GroupMap, r.cfg.LedgersMap)
	return builder.Build(accounts, parties), nil
}

func (r *Runner) readOptional(sourceDir string, t zoho.RecordType) ([]map[string]string, error) {
	path, ok := zoho.Locate(sourceDir, t)
	if !ok {
		r.logger.Debug("no export file", "record_type", string(t))
		return nil, nil
	}
	raw, err := zoho.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	return raw, nil
}

func (r *Runner) writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
