// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output serializes paper records to table files and to stdout.
//
// Every table format shares the same header and row layout: one row per
// record, with nested lists (authors, company affiliations) encoded as a
// JSON string inside a single cell.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/pdiddy/pubmed-fetcher/internal/logging"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Header is the column order of every table. Existing consumers depend on
// these exact names.
var Header = []string{"PubmedID", "Title", "Publication Date", "Authors", "Company Affiliations"}

// TableWriter writes a header and rows to path, replacing any existing file.
type TableWriter interface {
	WriteTable(path string, header []string, rows [][]string) error
}

// ForFormat returns the TableWriter for a format name. Empty means CSV.
func ForFormat(format types.OutputFormat) (TableWriter, error) {
	switch format {
	case "", types.FormatCSV:
		return CSVWriter{}, nil
	case types.FormatYAML:
		return YAMLWriter{}, nil
	case types.FormatSQLite:
		return SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: want csv, yaml, or sqlite", format)
	}
}

// Rows converts records into table rows in Header order.
func Rows(records []types.PaperRecord) ([][]string, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		authors := r.Authors
		if authors == nil {
			authors = []types.Author{}
		}
		authorsCell, err := json.Marshal(authors)
		if err != nil {
			return nil, fmt.Errorf("encoding authors for %s: %w", r.PubmedID, err)
		}

		companies := r.CompanyAffiliations
		if companies == nil {
			companies = []string{}
		}
		companiesCell, err := json.Marshal(companies)
		if err != nil {
			return nil, fmt.Errorf("encoding company affiliations for %s: %w", r.PubmedID, err)
		}

		rows = append(rows, []string{r.PubmedID, r.Title, r.PublicationDate, string(authorsCell), string(companiesCell)})
	}
	return rows, nil
}

// SaveToTable writes records to path with w. An empty record list still
// produces a header-only table and logs a warning. The target is
// overwritten unconditionally.
func SaveToTable(w TableWriter, records []types.PaperRecord, path string, log logging.Logger) error {
	if log == nil {
		log = logging.Nop()
	}
	if len(records) == 0 {
		log.Warn("no data to save, writing header only", logging.Fields{"path": path})
	}

	rows, err := Rows(records)
	if err != nil {
		return err
	}
	if err := w.WriteTable(path, Header, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	log.Info("results saved", logging.Fields{"path": path, "papers": len(records)})
	return nil
}

// checkRows verifies every row has one cell per header column.
func checkRows(header []string, rows [][]string) error {
	if len(header) == 0 {
		return fmt.Errorf("empty header")
	}
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(header))
		}
	}
	return nil
}
