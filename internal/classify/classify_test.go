// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonAcademic(t *testing.T) {
	tests := []struct {
		name        string
		affiliation string
		want        bool
	}{
		{"empty", "", false},
		{"university", "Department of Oncology, University of Oxford, UK", false},
		{"inc suffix", "Acme Inc", true},
		{"inc with period", "Genentech Inc., South San Francisco, CA", true},
		{"ltd", "Novo Holdings Ltd, Copenhagen", true},
		{"corporation", "Takeda Pharmaceutical Corporation", true},
		{"company", "Eli Lilly and Company, Indianapolis", true},
		{"biotech", "BeiGene Biotech, Beijing", true},
		{"pharma", "Roche Pharma Research and Early Development", true},
		{"diagnostics", "Foundation Medicine Diagnostics", true},
		{"keyword at start", "Pharma Division, Basel", true},
		{"keyword inside word", "Pharmacology Unit, Karolinska Institutet", true},
		{"lowercase does not match", "acme inc", false},
		{"uppercase does not match", "ACME INC", false},
		{"hospital", "Massachusetts General Hospital, Boston", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonAcademic(tt.affiliation))
		})
	}
}

func TestIsNonAcademicEveryDefaultKeyword(t *testing.T) {
	for _, kw := range DefaultKeywords {
		for _, s := range []string{kw, "prefix " + kw, kw + " suffix", "a" + kw + "b"} {
			assert.True(t, IsNonAcademic(s), "%q should match keyword %q", s, kw)
		}
	}
}

func TestNewCustomKeywords(t *testing.T) {
	c := New([]string{"GmbH", "", "S.A."})

	assert.Equal(t, []string{"GmbH", "S.A."}, c.Keywords())
	assert.True(t, c.IsNonAcademic("Bayer AG GmbH"))
	assert.True(t, c.IsNonAcademic("Sanofi S.A., Paris"))
	assert.False(t, c.IsNonAcademic("Acme Inc"), "defaults are replaced, not extended")
	assert.False(t, c.IsNonAcademic(""))
}

func TestNewTrimsAndDropsBlankKeywords(t *testing.T) {
	c := New([]string{"Inc", " ", " GmbH ", "\t"})

	assert.Equal(t, []string{"Inc", "GmbH"}, c.Keywords())
	assert.False(t, c.IsNonAcademic("University of Oxford"), "blank keyword must not match everything")
	assert.True(t, c.IsNonAcademic("Bayer GmbH"))
	assert.True(t, c.IsNonAcademic("GmbH-Zentrum"), "trimmed keyword matches without surrounding spaces")
}

func TestNewFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"only empty strings", []string{"", ""}},
		{"only whitespace", []string{" ", "\t", " \n "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.keywords)
			assert.Equal(t, DefaultKeywords, c.Keywords())
			assert.False(t, c.IsNonAcademic("University of Tokyo"))
		})
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	c := New([]string{"Inc"})
	kws := c.Keywords()
	kws[0] = "University"
	assert.False(t, c.IsNonAcademic("University of Tokyo"))
}

func TestFilter(t *testing.T) {
	c := New(nil)
	in := []string{"Acme Inc", "", "MIT", "Beta Biotech", "Stanford University", "Gamma Ltd"}

	assert.Equal(t, []string{"Acme Inc", "Beta Biotech", "Gamma Ltd"}, c.Filter(in))

	got := c.Filter(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
