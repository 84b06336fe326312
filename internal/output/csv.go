// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter writes comma-separated tables.
type CSVWriter struct{}

// WriteTable truncates path and writes the header followed by rows.
func (CSVWriter) WriteTable(path string, header []string, rows [][]string) error {
	if err := checkRows(header, rows); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing rows: %w", err)
	}
	return f.Close()
}
