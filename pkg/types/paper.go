// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the PubMed assistant.
package types

// Paper holds the metadata PubMed returns for one article. Only the PMID is
// guaranteed: source records frequently omit any of the other fields, and an
// empty value means the source did not provide one. Abstract is populated
// only by a detail fetch, never by an identifier search.
type Paper struct {
	// ID is the numeric PubMed identifier (PMID), always present.
	ID string `json:"id" yaml:"id"`

	// Title is the article title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors lists the article authors in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Journal is the full journal title.
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`

	// Year is the publication year as the source reports it. PubMed date
	// handling is inconsistent, so this stays a string rather than a time.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// DOI is the article DOI when the source lists one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Abstract is the article abstract. Labeled sections are joined as
	// "LABEL: text" in source order.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
}
