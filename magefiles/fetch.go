//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Fetch builds the CLI and runs a query, saving results under results/.
// The query comes from PUBMED_QUERY; PUBMED_FORMAT picks csv, yaml, or sqlite.
func Fetch() error {
	query := os.Getenv("PUBMED_QUERY")
	if query == "" {
		return fmt.Errorf("PUBMED_QUERY is not set")
	}
	format := os.Getenv("PUBMED_FORMAT")
	if format == "" {
		format = "csv"
	}
	mg.Deps(Build)
	if err := os.MkdirAll("results", 0o755); err != nil {
		return fmt.Errorf("creating results: %w", err)
	}

	out := filepath.Join("results", fmt.Sprintf("pubmed-%s.%s", time.Now().Format("20060102-150405"), format))
	if err := sh.RunV(filepath.Join(binDir, binName), "--format", format, "--file", out, query); err != nil {
		return fmt.Errorf("running %s: %w", binName, err)
	}
	fmt.Printf("Saved %s\n", out)
	return nil
}
