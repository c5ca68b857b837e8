package zoho

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVReader reads a Zoho CSV export. Rows shorter than the header are
// padded with empty values; rows longer are truncated, matching how the
// exports pad trailing columns.
type CSVReader struct{}

// Ext returns the file extension this reader handles.
func (CSVReader) Ext() string { return ".csv" }

// Read reads all records into header-keyed rows.
func (CSVReader) Read(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports are ragged, tolerate it

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
