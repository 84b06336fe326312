// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
)

const database = "pubmed"

// endpoints returns the esearch and esummary URLs, honouring BaseURL.
func (f *Fetcher) endpoints() (search, summary string) {
	if f.cfg.BaseURL == "" {
		return esearchURL, esummaryURL
	}
	base := strings.TrimRight(f.cfg.BaseURL, "/")
	return base + "/esearch.fcgi", base + "/esummary.fcgi"
}

// searchParams builds the esearch query. No sort is requested, so PubMed
// applies its default ordering.
func (f *Fetcher) searchParams(query string, maxResults int) url.Values {
	params := url.Values{
		"db":      {database},
		"term":    {query},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"json"},
	}
	f.addIdentity(params)
	return params
}

// summaryParams builds the esummary query for a batch of ids.
func (f *Fetcher) summaryParams(ids []string) url.Values {
	params := url.Values{
		"db":      {database},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"json"},
	}
	f.addIdentity(params)
	return params
}

// addIdentity sets the optional tool, email, and api_key parameters NCBI
// uses to attribute traffic.
func (f *Fetcher) addIdentity(params url.Values) {
	if f.cfg.Tool != "" {
		params.Set("tool", f.cfg.Tool)
	}
	if f.cfg.Email != "" {
		params.Set("email", f.cfg.Email)
	}
	if f.cfg.APIKey != "" {
		params.Set("api_key", f.cfg.APIKey)
	}
}

// esearch JSON structures.
type searchResponse struct {
	ESearchResult searchResult `json:"esearchresult"`
}

type searchResult struct {
	Count  string   `json:"count"`
	RetMax string   `json:"retmax"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}

// count parses the total match count, returning 0 when absent or malformed.
func (r searchResult) count() int {
	n, err := strconv.Atoi(r.Count)
	if err != nil {
		return 0
	}
	return n
}

// esummary JSON structures. The result object maps each uid to a document
// summary and also holds a "uids" array, so entries are decoded one by one.
type summaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// summaryEntry is one document summary kept as raw fields, so a field with
// an unexpected type loses only itself.
type summaryEntry map[string]json.RawMessage

type summaryAuthor struct {
	Name        string `json:"name"`
	AuthType    string `json:"authtype"`
	Affiliation string `json:"affiliation"`
}

// str decodes a string field. It returns nil when the field is absent or
// null, and an error when it holds anything other than a string.
func (e summaryEntry) str(key string) (*string, error) {
	raw, ok := e[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// authors decodes the author list. Elements that are not author objects
// are skipped and reported in the error alongside the authors that did
// decode.
func (e summaryEntry) authors() ([]summaryAuthor, error) {
	raw, ok := e["authors"]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]summaryAuthor, 0, len(items))
	skipped := 0
	for _, item := range items {
		var a summaryAuthor
		if err := json.Unmarshal(item, &a); err != nil || isNull(item) {
			skipped++
			continue
		}
		out = append(out, a)
	}
	if skipped > 0 {
		return out, fmt.Errorf("skipped %d malformed author entries", skipped)
	}
	return out, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
