// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify flags author affiliations that look non-academic.
// Matching is a case-sensitive substring test against a keyword list that
// callers may replace through configuration.
package classify

import "strings"

// DefaultKeywords are the substrings that mark an affiliation as a company.
var DefaultKeywords = []string{"Inc", "Ltd", "Corporation", "Company", "Biotech", "Pharma", "Diagnostics"}

// Classifier matches affiliations against a fixed keyword set.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	keywords []string
}

// New returns a Classifier for keywords. Keywords are trimmed of
// surrounding whitespace, so "Inc, GmbH" style lists work, and blank ones
// are dropped since they would match nearly every affiliation. With no
// usable keywords the defaults apply.
func New(keywords []string) *Classifier {
	kept := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			kept = append(kept, kw)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, DefaultKeywords...)
	}
	return &Classifier{keywords: kept}
}

// Keywords returns a copy of the active keyword list.
func (c *Classifier) Keywords() []string {
	return append([]string(nil), c.keywords...)
}

// IsNonAcademic reports whether affiliation contains any keyword.
func (c *Classifier) IsNonAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	for _, kw := range c.keywords {
		if strings.Contains(affiliation, kw) {
			return true
		}
	}
	return false
}

// Filter returns the non-academic affiliations in input order. The result
// is never nil so it serializes as an empty list.
func (c *Classifier) Filter(affiliations []string) []string {
	out := []string{}
	for _, a := range affiliations {
		if c.IsNonAcademic(a) {
			out = append(out, a)
		}
	}
	return out
}

var defaultClassifier = New(nil)

// IsNonAcademic classifies affiliation with DefaultKeywords.
func IsNonAcademic(affiliation string) bool {
	return defaultClassifier.IsNonAcademic(affiliation)
}
