// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API. The API is two-stage by
// design: esearch is a cheap call returning only matching PMIDs, efetch is
// the expensive call returning full article metadata. Callers should fetch
// details only for the identifiers they actually need.
package pubmed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/pubmed-assistant/internal/httputil"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// E-utility endpoints. Declared as vars so tests can substitute httptest
// servers.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// ErrSourceUnavailable marks a transport or server failure reaching PubMed.
// A valid query with zero matches is not an error and returns an empty
// result instead.
var ErrSourceUnavailable = errors.New("PubMed unavailable")

// Client issues identifier searches and detail fetches against PubMed.
// All requests pass through a shared throttle so the process stays under
// the NCBI rate ceiling, and 429 responses are retried with backoff.
type Client struct {
	httpClient *http.Client
	cfg        types.PubMedConfig
	throttle   *httputil.Throttle
}

// NewClient returns a Client configured per cfg. A zero Timeout defaults
// to 10 seconds and an empty UserAgent to "pubmed-assistant/0.1".
func NewClient(cfg types.PubMedConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "pubmed-assistant/0.1"
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		throttle:   httputil.NewThrottle(cfg.RequestInterval),
	}
}

// SearchAuthor searches for papers authored by name and returns the
// matching PMIDs in source order plus the total hit count reported by
// PubMed (which may exceed len(ids) when it is larger than max).
func (c *Client) SearchAuthor(ctx context.Context, name string, max int) (ids []string, total int, err error) {
	return c.search(ctx, fmt.Sprintf("%s[Author]", name), max)
}

// SearchTitle looks up a single paper by title. It tries an exact quoted
// title search first and falls back to a partial match, then fetches
// details for the top PMID. Returns nil when nothing matches.
func (c *Client) SearchTitle(ctx context.Context, title string) (*types.Paper, error) {
	ids, _, err := c.search(ctx, fmt.Sprintf("%q[Title]", title), 5)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// Partial match without quotes.
		ids, _, err = c.search(ctx, fmt.Sprintf("%s[Title]", title), 5)
		if err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	papers, err := c.FetchDetails(ctx, ids[:1])
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		return nil, nil
	}
	return &papers[0], nil
}

// FetchDetails retrieves full metadata for the given PMIDs in one batched
// efetch call. The result holds one Paper per identifier the source has
// data for; unknown identifiers are silently dropped, so the result may be
// shorter than the request. Absent metadata fields stay empty rather than
// failing the whole fetch.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]types.Paper, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	resp, err := c.get(ctx, efetchBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: efetch returned HTTP %d", ErrSourceUnavailable, resp.StatusCode)
	}

	papers, err := parseArticleSet(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}
	return papers, nil
}

// search runs one esearch call with the given term.
func (c *Client) search(ctx context.Context, term string, max int) ([]string, int, error) {
	if max <= 0 {
		max = 20
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {term},
		"retmax":  {strconv.Itoa(max)},
		"retmode": {"json"},
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	resp, err := c.get(ctx, esearchBase+"?"+params.Encode())
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("%w: esearch returned HTTP %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var er esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, 0, fmt.Errorf("parsing esearch response: %w", err)
	}

	total, err := strconv.Atoi(er.Result.Count)
	if err != nil {
		// Count is a string in the JSON payload and occasionally absent;
		// fall back to the identifier list length.
		total = len(er.Result.IDList)
	}
	return er.Result.IDList, total, nil
}

// get issues a throttled GET with retry on 429.
func (c *Client) get(ctx context.Context, reqURL string) (*http.Response, error) {
	if err := c.throttle.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return resp, nil
}

// esearch JSON structures. All counts come back as strings.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
