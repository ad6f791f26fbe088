// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-assistant/internal/cache"
)

// idListLimit caps how many PMIDs are echoed in a summary line.
const idListLimit = 10

// --- search_papers_by_author ---

type authorSearchTool struct {
	source     PaperSource
	results    *cache.Results
	maxResults int
}

func (t *authorSearchTool) Name() string { return NameSearchByAuthor }

func (t *authorSearchTool) ArgName() string { return "author_name" }

func (t *authorSearchTool) Description() string {
	return "Search for papers by a specific author. Honorifics like Dr. or Prof. are stripped automatically."
}

// Call normalizes the name, searches PubMed, and remembers the identifier
// list under the normalized name. When the full name yields nothing the
// search is retried with the last name alone, since PubMed author indexing
// is surname-first.
func (t *authorSearchTool) Call(ctx context.Context, arg string) (Result, error) {
	name := NormalizeAuthor(arg)
	if name == "" {
		return Result{Text: "No author name given."}, nil
	}

	ids, total, err := t.source.SearchAuthor(ctx, name, t.maxResults)
	if err != nil {
		return Result{}, err
	}

	searched := name
	if total == 0 {
		if last := lastToken(name); last != "" && last != name {
			ids, total, err = t.source.SearchAuthor(ctx, last, t.maxResults)
			if err != nil {
				return Result{}, err
			}
			if total > 0 {
				searched = last
			}
		}
	}

	t.results.Remember(name, ids)

	res := Result{Author: name, PaperIDs: ids, Count: total}
	switch {
	case total == 0:
		res.Text = fmt.Sprintf("Found 0 papers by %s.", name)
	case searched != name:
		res.Text = fmt.Sprintf("Found %d papers by authors with last name %q. Paper IDs: %s",
			total, searched, summarizeIDs(ids))
	default:
		res.Text = fmt.Sprintf("Found %d papers by %s. Paper IDs: %s", total, name, summarizeIDs(ids))
	}
	return res, nil
}

// --- search_paper_by_title ---

type titleSearchTool struct {
	source PaperSource
}

func (t *titleSearchTool) Name() string { return NameSearchByTitle }

func (t *titleSearchTool) ArgName() string { return "title" }

func (t *titleSearchTool) Description() string {
	return "Search for a paper by its title and return full details for the best match."
}

func (t *titleSearchTool) Call(ctx context.Context, arg string) (Result, error) {
	if arg == "" {
		return Result{Text: "No title given."}, nil
	}

	p, err := t.source.SearchTitle(ctx, arg)
	if err != nil {
		return Result{}, err
	}
	if p == nil {
		return Result{Text: "No papers found with this title. Try searching by author or use a shorter title."}, nil
	}
	return Result{Paper: p, Text: fmt.Sprintf("Found paper %s: %s", p.ID, p.Title)}, nil
}

// --- get_paper_details ---

type paperDetailsTool struct {
	source PaperSource
}

func (t *paperDetailsTool) Name() string { return NamePaperDetails }

func (t *paperDetailsTool) ArgName() string { return "paper_id" }

func (t *paperDetailsTool) Description() string {
	return "Get detailed information about a paper by its numeric PubMed ID."
}

func (t *paperDetailsTool) Call(ctx context.Context, arg string) (Result, error) {
	if !isNumeric(arg) {
		return Result{}, fmt.Errorf("invalid paper ID %q: paper IDs must be numeric", arg)
	}

	papers, err := t.source.FetchDetails(ctx, []string{arg})
	if err != nil {
		return Result{}, err
	}
	if len(papers) == 0 {
		return Result{Text: fmt.Sprintf("No article found for ID %s.", arg)}, nil
	}
	p := papers[0]
	return Result{Paper: &p, Text: fmt.Sprintf("Found paper %s: %s", p.ID, p.Title)}, nil
}

// --- helpers ---

func lastToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func summarizeIDs(ids []string) string {
	if len(ids) > idListLimit {
		ids = ids[:idListLimit]
	}
	return strings.Join(ids, ", ")
}
