// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTable is the table name SQLiteWriter creates.
const SQLiteTable = "papers"

// SQLiteWriter writes a table into a fresh SQLite database file. Column
// names are the header names and every column is TEXT.
type SQLiteWriter struct{}

// WriteTable removes any existing file at path, creates the papers table,
// and inserts rows in a single transaction.
func (SQLiteWriter) WriteTable(path string, header []string, rows [][]string) error {
	if err := checkRows(header, rows); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing file: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	cols := make([]string, len(header))
	marks := make([]string, len(header))
	for i, h := range header {
		cols[i] = quoteIdent(h) + " TEXT"
		marks[i] = "?"
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(SQLiteTable), strings.Join(cols, ", "))); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(SQLiteTable), strings.Join(marks, ", ")))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(header))
	for i, row := range rows {
		for j, cell := range row {
			args[j] = cell
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// quoteIdent quotes a SQL identifier so header names with spaces are valid columns.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
