package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AddAndCount(t *testing.T) {
	log := New(nil)
	log.Add(SeverityWarn, CodeUnparsableDate, "invoices", "Invoice Date", "unparsable date x")
	log.Add(SeverityInfo, CodeUnparsableNumber, "invoices", "Total", "unparsable number y")
	log.Add(SeverityWarn, CodeImbalancedVoucher, "Journal", "JRN-1", "entries sum to 50.00")

	assert.Len(t, log.Entries(), 3)
	assert.Equal(t, 2, log.CountBySeverity(SeverityWarn))
	assert.Equal(t, 1, log.CountBySeverity(SeverityInfo))
	assert.Equal(t, 0, log.CountBySeverity(SeverityError))
}

func TestMarshalUnmarshalDiagnostic(t *testing.T) {
	log := New(nil)
	log.Add(SeverityWarn, CodeDuplicateLedgerName, "contacts", "Acme Traders", "duplicate ledger name discarded")

	row := MarshalDiagnostic(log.Entries()[0])
	got, err := UnmarshalDiagnostic(row)
	require.NoError(t, err)

	assert.Equal(t, SeverityWarn, got.Severity)
	assert.Equal(t, CodeDuplicateLedgerName, got.Code)
	assert.Equal(t, "contacts", got.RecordType)
	assert.Equal(t, "Acme Traders", got.Key)
}

func TestUnmarshalDiagnostic_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalDiagnostic([]string{"only", "three", "fields"})
	assert.Error(t, err)
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	log := New(nil)
	log.Add(SeverityWarn, CodeMissingRequiredField, "invoices", "Invoice ID", "row has no document id, dropped")
	require.NoError(t, log.Append(dir))

	// A second run appends without duplicating the header.
	log2 := New(nil)
	log2.Add(SeverityInfo, CodeUnknownAccountType, "chart_of_accounts", "Mystery", "using Suspense A/c")
	require.NoError(t, log2.Append(dir))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, CodeMissingRequiredField, entries[0].Code)
	assert.Equal(t, CodeUnknownAccountType, entries[1].Code)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
