package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybridge/tallybridge/internal/config"
	"github.com/tallybridge/tallybridge/internal/model"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func setupWorkspace(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default("Acme Pvt Ltd")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, cfg.Dirs.Source), 0o755))
	return dir, cfg
}

func TestRun_EndToEnd(t *testing.T) {
	dir, cfg := setupWorkspace(t)
	src := filepath.Join(dir, cfg.Dirs.Source)

	writeSource(t, src, "Chart_of_Accounts.csv",
		"Account ID,Account Name,Account Type,Opening Balance\n"+
			"A1,Widget Income,Income,0.00\n"+
			"A2,HDFC Bank,Bank,5000.00\n")
	writeSource(t, src, "Contacts.csv",
		"Contact ID,Display Name,Opening Balance\n"+
			"C1,Acme Traders,0.00\n")
	writeSource(t, src, "Invoice.csv",
		"Invoice ID,Invoice Number,Invoice Date,Customer ID,Customer Name,Total,Item Name,Account,Item Total,CGST,SGST\n"+
			"1001,INV-100,2025-04-01,C1,Acme Traders,118.00,Widget,Widget Income,100.00,9.00,9.00\n")
	writeSource(t, src, "Journal.csv",
		"Journal Number,Journal Date,Account,Debit,Credit\n"+
			"JRN-1,2025-04-11,Widget Income,500.00,\n"+
			"JRN-1,2025-04-11,HDFC Bank,,500.00\n")

	stats, err := NewRunner(dir, cfg, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Accounts)
	assert.Equal(t, 1, stats.Parties)
	assert.Greater(t, stats.Ledgers, 3, "mandatory ledgers provisioned on top of source")
	assert.Zero(t, stats.Imbalances)

	counts := make(map[model.VoucherType]int)
	for _, vc := range stats.Vouchers {
		counts[vc.Type] = vc.Count
	}
	assert.Equal(t, 1, counts[model.TypeSales])
	assert.Equal(t, 1, counts[model.TypeJournal])

	out := filepath.Join(dir, cfg.Dirs.Output)
	for _, name := range []string{"tally_ledgers.xml", "tally_sales_vouchers.xml", "tally_journal_vouchers.xml"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(out, "tally_sales_vouchers.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `REMOTEID="SAL-1001"`)
	assert.Contains(t, string(data), "<AMOUNT>-118.00</AMOUNT>")
}

func TestRun_MissingExportsAreTolerated(t *testing.T) {
	dir, cfg := setupWorkspace(t)

	stats, err := NewRunner(dir, cfg, nil).Run()
	require.NoError(t, err)

	assert.Zero(t, stats.Accounts)
	assert.Zero(t, stats.Parties)
	assert.Empty(t, stats.Vouchers)
	assert.Greater(t, stats.Ledgers, 0, "mandatory ledgers alone still make a catalog")

	_, err = os.Stat(filepath.Join(dir, cfg.Dirs.Output, "tally_ledgers.xml"))
	assert.NoError(t, err)
}

func TestRun_ImbalancedJournalFlaggedAndLogged(t *testing.T) {
	dir, cfg := setupWorkspace(t)
	src := filepath.Join(dir, cfg.Dirs.Source)

	writeSource(t, src, "Journal.csv",
		"Journal Number,Journal Date,Account,Debit,Credit\n"+
			"JRN-9,2025-04-12,Rent,500.00,\n"+
			"JRN-9,2025-04-12,Cash-in-Hand,,450.00\n")

	stats, err := NewRunner(dir, cfg, nil).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Imbalances)
	assert.GreaterOrEqual(t, stats.Warnings, 1)

	logPath := filepath.Join(dir, "logs", "migration-log.csv")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "imbalanced_voucher")
	assert.Contains(t, string(data), "JRN-9")
}
