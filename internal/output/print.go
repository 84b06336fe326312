// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// FormatList writes one "ID - Title (Date)" line per record to w.
func FormatList(records []types.PaperRecord, w io.Writer) {
	for _, r := range records {
		fmt.Fprintf(w, "%s - %s (%s)\n", r.PubmedID, r.Title, r.PublicationDate)
	}
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	if records == nil {
		records = []types.PaperRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
