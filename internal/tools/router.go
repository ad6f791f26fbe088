// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/pubmed-assistant/internal/cache"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// Tool names. The set is closed: the router executes nothing outside it.
const (
	NameSearchByAuthor = "search_papers_by_author"
	NameSearchByTitle  = "search_paper_by_title"
	NamePaperDetails   = "get_paper_details"
)

// ErrUnrecognizedTool is returned when a caller (usually the language
// model) names a tool outside the fixed set. The call is never executed.
var ErrUnrecognizedTool = errors.New("unrecognized tool")

// PaperSource is the PubMed lookup surface the tools depend on. Satisfied
// by *pubmed.Client; tests supply a stub.
type PaperSource interface {
	SearchAuthor(ctx context.Context, name string, max int) (ids []string, total int, err error)
	SearchTitle(ctx context.Context, title string) (*types.Paper, error)
	FetchDetails(ctx context.Context, ids []string) ([]types.Paper, error)
}

// Tool is one callable lookup operation. Each takes exactly one string
// argument, described by ArgName for the model-facing schema.
type Tool interface {
	Name() string
	Description() string
	ArgName() string
	Call(ctx context.Context, arg string) (Result, error)
}

// Result carries a tool outcome in both structured and displayable form.
// Exactly one of PaperIDs or Paper is populated depending on the tool;
// Text is always set and safe to show directly.
type Result struct {
	// Text is a short preformatted summary of the outcome.
	Text string

	// Author is the normalized author name an author search ran under.
	Author string

	// PaperIDs holds the identifiers from an author search, in source
	// relevance order.
	PaperIDs []string

	// Count is the total hit count PubMed reported, which can exceed
	// len(PaperIDs).
	Count int

	// Paper is the single record from a title search or detail fetch.
	Paper *types.Paper
}

// Router dispatches calls into the closed tool set. Arguments are trimmed
// of surrounding whitespace; no other coercion is performed.
type Router struct {
	order  []Tool
	byName map[string]Tool
}

// NewRouter builds the three-tool router backed by source, writing author
// search results into results. maxResults bounds identifier searches.
func NewRouter(source PaperSource, results *cache.Results, maxResults int) *Router {
	if maxResults <= 0 {
		maxResults = 20
	}
	tools := []Tool{
		&authorSearchTool{source: source, results: results, maxResults: maxResults},
		&titleSearchTool{source: source},
		&paperDetailsTool{source: source},
	}

	r := &Router{byName: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.order = append(r.order, t)
		r.byName[t.Name()] = t
	}
	return r
}

// Tools returns the tool set in declaration order, for building the
// model-facing schema listing.
func (r *Router) Tools() []Tool {
	return r.order
}

// Call invokes the named tool with arg. An unknown name returns
// ErrUnrecognizedTool without executing anything.
func (r *Router) Call(ctx context.Context, name, arg string) (Result, error) {
	tool, ok := r.byName[strings.TrimSpace(name)]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnrecognizedTool, name)
	}
	return tool.Call(ctx, strings.TrimSpace(arg))
}
