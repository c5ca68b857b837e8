// Package diag collects row- and voucher-scoped migration diagnostics.
// Nothing here is fatal: the engine substitutes defaults or drops the
// offending record and keeps going, and the collected log is the record of
// everything it did so.
package diag

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Severity orders diagnostics for review.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Code identifies the diagnostic category.
type Code string

const (
	CodeMissingRequiredField Code = "missing_required_field"
	CodeUnparsableDate       Code = "unparsable_date"
	CodeUnparsableNumber     Code = "unparsable_number"
	CodeUnknownAccountType   Code = "unknown_account_type"
	CodeDuplicateLedgerName  Code = "duplicate_ledger_name"
	CodeImbalancedVoucher    Code = "imbalanced_voucher"
)

// Diagnostic is one row in the migration log.
type Diagnostic struct {
	Timestamp  time.Time
	Severity   Severity
	Code       Code
	RecordType string
	Key        string // natural key, ledger name, or column of the subject
	Detail     string
}

// Log accumulates diagnostics for a migration run and mirrors them to slog.
type Log struct {
	logger  *slog.Logger
	entries []Diagnostic
}

// New creates a Log. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

// Add records one diagnostic.
func (l *Log) Add(sev Severity, code Code, recordType, key, detail string) {
	l.entries = append(l.entries, Diagnostic{
		Timestamp:  time.Now(),
		Severity:   sev,
		Code:       code,
		RecordType: recordType,
		Key:        key,
		Detail:     detail,
	})

	attrs := []any{"code", string(code), "record_type", recordType, "key", key, "detail", detail}
	switch sev {
	case SeverityError:
		l.logger.Error("migration diagnostic", attrs...)
	case SeverityWarn:
		l.logger.Warn("migration diagnostic", attrs...)
	default:
		l.logger.Debug("migration diagnostic", attrs...)
	}
}

// Entries returns all recorded diagnostics in order.
func (l *Log) Entries() []Diagnostic {
	return l.entries
}

// CountBySeverity returns how many entries carry the given severity.
func (l *Log) CountBySeverity(sev Severity) int {
	n := 0
	for _, d := range l.entries {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Header is the CSV header for migration-log.csv.
const Header = "timestamp,severity,code,record_type,key,detail"

const (
	numFields     = 6
	logDir        = "logs"
	logFile       = "logs/migration-log.csv"
	colTimestamp  = 0
	colSeverity   = 1
	colCode       = 2
	colRecordType = 3
	colKey        = 4
	colDetail     = 5
)

// MarshalDiagnostic converts a Diagnostic to a CSV row.
func MarshalDiagnostic(d Diagnostic) []string {
	row := make([]string, numFields)
	row[colTimestamp] = d.Timestamp.Format(time.RFC3339)
	row[colSeverity] = string(d.Severity)
	row[colCode] = string(d.Code)
	row[colRecordType] = d.RecordType
	row[colKey] = d.Key
	row[colDetail] = d.Detail
	return row
}

// UnmarshalDiagnostic converts a CSV row to a Diagnostic.
func UnmarshalDiagnostic(record []string) (Diagnostic, error) {
	if len(record) != numFields {
		return Diagnostic{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Diagnostic{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Diagnostic{
		Timestamp:  ts,
		Severity:   Severity(record[colSeverity]),
		Code:       Code(record[colCode]),
		RecordType: record[colRecordType],
		Key:        record[colKey],
		Detail:     record[colDetail],
	}, nil
}

// Append writes the collected entries to <workDir>/logs/migration-log.csv,
// creating the file and header if needed.
func (l *Log) Append(workDir string) error {
	dir := filepath.Join(workDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(workDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening migration log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, d := range l.entries {
		if err := cw.Write(MarshalDiagnostic(d)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all diagnostics from <workDir>/logs/migration-log.csv.
// Returns an empty slice if the file does not exist.
func Read(workDir string) ([]Diagnostic, error) {
	path := filepath.Join(workDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening migration log: %w", err)
	}
	defer f.Close()

	return readDiagnostics(f)
}

func readDiagnostics(r io.Reader) ([]Diagnostic, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading migration log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Diagnostic
	for i, rec := range records[1:] {
		d, err := UnmarshalDiagnostic(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, d)
	}
	return entries, nil
}
