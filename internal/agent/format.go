// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-assistant/internal/tools"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// FormatPaper renders one paper as a detail block. Absent fields are
// omitted outright rather than shown with placeholder text, so the reader
// can tell missing data from empty data.
func FormatPaper(p types.Paper) string {
	var b strings.Builder
	b.WriteString("PAPER DETAILS\n")
	fmt.Fprintf(&b, "Paper ID: %s\n", p.ID)
	if p.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", p.Title)
	}
	if len(p.Authors) > 0 {
		fmt.Fprintf(&b, "Authors: %s\n", strings.Join(p.Authors, ", "))
	}
	switch {
	case p.Journal != "" && p.Year != "":
		fmt.Fprintf(&b, "Journal: %s (%s)\n", p.Journal, p.Year)
	case p.Journal != "":
		fmt.Fprintf(&b, "Journal: %s\n", p.Journal)
	case p.Year != "":
		fmt.Fprintf(&b, "Year: %s\n", p.Year)
	}
	if p.DOI != "" {
		fmt.Fprintf(&b, "DOI: %s\n", p.DOI)
	}
	if p.Abstract != "" {
		b.WriteString("\nAbstract:\n")
		b.WriteString(p.Abstract)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatAuthorSearch renders an author search summary followed by detail
// blocks for the papers that were expanded.
func formatAuthorSearch(res tools.Result, details []types.Paper) string {
	var b strings.Builder
	b.WriteString(res.Text)

	if len(details) > 0 {
		fmt.Fprintf(&b, "\n\nDetails for the first %d paper(s):\n", len(details))
		for i, p := range details {
			fmt.Fprintf(&b, "\n--- Paper %d ---\n", i+1)
			b.WriteString(FormatPaper(p))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatMoreResults renders a follow-up batch of papers from a cached
// author search. start is how many papers earlier turns already showed,
// so numbering continues where the previous reply stopped.
func formatMoreResults(author string, start int, details []types.Paper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "More papers by %s:\n", author)
	for i, p := range details {
		fmt.Fprintf(&b, "\n--- Paper %d ---\n", start+i+1)
		b.WriteString(FormatPaper(p))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
