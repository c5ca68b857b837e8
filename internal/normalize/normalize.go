// Package normalize cleans raw tabular rows into a canonical shape: dates
// parsed, numbers parsed, strings trimmed, declared-but-absent columns
// synthesized with defaults. Bad values never raise; they become the
// canonical empty value and a low-severity diagnostic.
package normalize

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybridge/tallybridge/internal/diag"
)

// dateLayouts are the formats seen across Zoho exports, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
	"02 Jan 2006",
}

// Row is one normalized record. All fields declared by the schema are
// present; typed getters return the canonical zero value for anything else.
type Row struct {
	strings map[string]string
	dates   map[string]time.Time
	numbers map[string]decimal.Decimal
}

// String returns the trimmed string value of a column, or "".
func (r Row) String(name string) string { return r.strings[name] }

// Date returns the parsed date of a declared date column, or the zero time.
func (r Row) Date(name string) time.Time { return r.dates[name] }

// Number returns the parsed decimal of a declared numeric column, or zero.
func (r Row) Number(name string) decimal.Decimal {
	if n, ok := r.numbers[name]; ok {
		return n
	}
	return decimal.Zero
}

// Has reports whether the column is present on the normalized row.
// Declared columns are always present, synthesized from their default when
// the raw row lacked them; Has is only informative for passthrough columns.
func (r Row) Has(name string) bool {
	_, ok := r.strings[name]
	return ok
}

// Normalize cleans one raw row against a schema. Unparsable dates and
// numbers are substituted with the canonical empty value and recorded on
// the diagnostic log; the function never fails.
func Normalize(s Schema, raw map[string]string, log *diag.Log) Row {
	row := Row{
		strings: make(map[string]string, len(raw)),
		dates:   make(map[string]time.Time),
		numbers: make(map[string]decimal.Decimal),
	}

	declared := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		declared[f.Name] = true
		val, ok := raw[f.Name]
		if !ok {
			val = f.Default
		}
		val = strings.TrimSpace(val)
		row.strings[f.Name] = val

		switch f.Kind {
		case KindDate:
			row.dates[f.Name] = parseDate(s.RecordType, f.Name, val, log)
		case KindNumber:
			row.numbers[f.Name] = parseNumber(s.RecordType, f.Name, val, log)
		}
	}

	// Undeclared columns pass through unchanged.
	for name, val := range raw {
		if !declared[name] {
			row.strings[name] = strings.TrimSpace(val)
		}
	}

	return row
}

func parseDate(recordType, column, val string, log *diag.Log) time.Time {
	if val == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, val); err == nil {
			return t
		}
	}
	if log != nil {
		log.Add(diag.SeverityInfo, diag.CodeUnparsableDate, recordType, column, "unparsable date "+val)
	}
	return time.Time{}
}

func parseNumber(recordType, column, val string, log *diag.Log) decimal.Decimal {
	if val == "" {
		return decimal.Zero
	}
	cleaned := strings.ReplaceAll(val, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	n, err := decimal.NewFromString(cleaned)
	if err != nil {
		if log != nil {
			log.Add(diag.SeverityInfo, diag.CodeUnparsableNumber, recordType, column, "unparsable number "+val)
		}
		return decimal.Zero
	}
	return n
}
