// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves PubMed paper records through the E-utilities
// search and summary endpoints and flags company affiliations.
//
// A fetch is two sequential GETs: esearch maps the query to an ordered id
// list, then a single batched esummary call returns metadata for every id.
// Records come back in search order. Ids missing from the summary response
// get placeholder records rather than failing the batch.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/internal/logging"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// DefaultMaxResults is the search page size when none is configured.
const DefaultMaxResults = 10

// ErrNoResults is returned by Fetch when the search matched nothing.
var ErrNoResults = errors.New("no papers found")

// StatusError reports a non-200 response from an E-utilities endpoint.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Result holds the records from one fetch plus search statistics.
type Result struct {
	// Papers are in search-result order.
	Papers []types.PaperRecord

	// Count is the total number of matches PubMed reported for the query,
	// which may exceed len(Papers).
	Count int

	// Missing lists ids that had no usable summary entry and were given
	// placeholder records.
	Missing []string
}

// Fetcher runs searches against PubMed. It keeps no state between calls.
type Fetcher struct {
	get        httputil.Getter
	classifier *classify.Classifier
	cfg        types.FetchConfig
	log        logging.Logger
}

// New returns a Fetcher. A nil classifier uses the default keywords and a
// nil logger discards output.
func New(get httputil.Getter, classifier *classify.Classifier, cfg types.FetchConfig, log logging.Logger) *Fetcher {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Fetcher{get: get, classifier: classifier, cfg: cfg, log: log}
}

// FetchPapers returns up to maxResults records for query. Every failure,
// including zero matches, is logged and yields an empty slice; use Fetch
// to tell the cases apart.
func (f *Fetcher) FetchPapers(ctx context.Context, query string, maxResults int) []types.PaperRecord {
	res, err := f.Fetch(ctx, query, maxResults)
	if err != nil {
		return []types.PaperRecord{}
	}
	return res.Papers
}

// Fetch searches for query and returns the matching records. It returns
// ErrNoResults when the search yields no ids, a *StatusError for non-200
// responses, and a wrapped transport or decode error otherwise. The
// summary endpoint is not called unless the search returned ids.
func (f *Fetcher) Fetch(ctx context.Context, query string, maxResults int) (Result, error) {
	if maxResults <= 0 {
		maxResults = f.cfg.MaxResults
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	searchURL, summaryURL := f.endpoints()
	log := f.log.With(logging.Fields{"query": query})
	log.Info("searching PubMed", logging.Fields{"max_results": maxResults})

	var sr searchResponse
	if err := f.getJSON(ctx, "esearch", searchURL, f.searchParams(query, maxResults), &sr); err != nil {
		log.Error("search request failed", logging.Fields{"error": err})
		return Result{}, fmt.Errorf("searching PubMed: %w", err)
	}

	ids := sr.ESearchResult.IDList
	if len(ids) == 0 {
		fields := logging.Fields{}
		if sr.ESearchResult.Error != "" {
			fields["pubmed_error"] = sr.ESearchResult.Error
		}
		log.Warn("no papers found", fields)
		return Result{}, ErrNoResults
	}

	count := sr.ESearchResult.count()
	log.Info("found papers, fetching details", logging.Fields{"ids": len(ids), "total_matches": count})

	if err := sleep(ctx, f.cfg.SummaryDelay); err != nil {
		log.Error("cancelled before fetching details", logging.Fields{"error": err})
		return Result{}, err
	}

	var sum summaryResponse
	if err := f.getJSON(ctx, "esummary", summaryURL, f.summaryParams(ids), &sum); err != nil {
		log.Error("failed to fetch paper details", logging.Fields{"error": err})
		return Result{}, fmt.Errorf("fetching summaries: %w", err)
	}

	res := Result{Papers: make([]types.PaperRecord, 0, len(ids)), Count: count}
	for _, id := range ids {
		rec, ok := f.buildRecord(id, sum.Result[id], log)
		if !ok {
			res.Missing = append(res.Missing, id)
		}
		res.Papers = append(res.Papers, rec)
	}

	if len(res.Missing) > 0 {
		log.Warn("some papers had no summary, using placeholders", logging.Fields{"missing": res.Missing})
	}
	log.Info("fetched paper details", logging.Fields{"papers": len(res.Papers)})
	return res, nil
}

// buildRecord converts one summary entry into a PaperRecord. ok is false
// when the entry was absent or not a JSON object, in which case the
// placeholder record is returned. Individual fields that fail to decode
// fall back to their placeholder values.
func (f *Fetcher) buildRecord(id string, raw json.RawMessage, log logging.Logger) (types.PaperRecord, bool) {
	if isNull(raw) {
		return types.Placeholder(id), false
	}

	var entry summaryEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Debug("malformed summary entry", logging.Fields{"id": id, "error": err})
		return types.Placeholder(id), false
	}
	if msg, _ := entry.str("error"); msg != nil && *msg != "" {
		log.Debug("summary entry reports an error", logging.Fields{"id": id, "pubmed_error": *msg})
	}

	rec := types.Placeholder(id)
	if title, err := entry.str("title"); err != nil {
		log.Debug("malformed summary field", logging.Fields{"id": id, "field": "title", "error": err})
	} else if title != nil {
		rec.Title = *title
	}
	if date, err := entry.str("pubdate"); err != nil {
		log.Debug("malformed summary field", logging.Fields{"id": id, "field": "pubdate", "error": err})
	} else if date != nil {
		rec.PublicationDate = *date
	}

	authors, err := entry.authors()
	if err != nil {
		log.Debug("malformed summary field", logging.Fields{"id": id, "field": "authors", "error": err})
	}
	affiliations := make([]string, 0, len(authors))
	for _, a := range authors {
		rec.Authors = append(rec.Authors, types.Author{Name: a.Name, Affiliation: a.Affiliation})
		affiliations = append(affiliations, a.Affiliation)
	}
	rec.CompanyAffiliations = f.classifier.Filter(affiliations)

	log.Debug("built record", logging.Fields{
		"id":                   id,
		"authors":              len(rec.Authors),
		"company_affiliations": len(rec.CompanyAffiliations),
	})
	return rec, true
}

// getJSON performs a GET and decodes a 200 response into v.
func (f *Fetcher) getJSON(ctx context.Context, endpoint, rawURL string, params url.Values, v any) error {
	status, body, err := f.get.Get(ctx, rawURL, params)
	if err != nil {
		return fmt.Errorf("%s request: %w", endpoint, err)
	}
	if status != http.StatusOK {
		return &StatusError{Endpoint: endpoint, StatusCode: status}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
