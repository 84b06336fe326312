// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pubmed-fetcher.
package types

// NotAvailable is the placeholder for a title or date missing upstream.
const NotAvailable = "N/A"

// Author is a single paper author as returned by the summary endpoint.
// Only Affiliation drives classification; Name is carried through for output.
type Author struct {
	// Name is the author name in PubMed display form (e.g. "Smith J").
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Affiliation is the free-text institution string. May be empty.
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// PaperRecord holds the fetched metadata for one PubMed paper.
// Field order matches the output table's column order.
type PaperRecord struct {
	// PubmedID is the PMID returned by the search endpoint.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the paper title, or NotAvailable.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is the pubdate string verbatim (e.g. "2020 Jan 5"), or NotAvailable.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Authors lists the paper authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// CompanyAffiliations is the subset of author affiliations classified
	// as non-academic, in author order.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`
}

// Placeholder returns the record used when the summary response has no
// usable entry for id.
func Placeholder(id string) PaperRecord {
	return PaperRecord{
		PubmedID:            id,
		Title:               NotAvailable,
		PublicationDate:     NotAvailable,
		Authors:             []Author{},
		CompanyAffiliations: []string{},
	}
}
