// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent runs the per-turn orchestration loop: ask the language
// model which lookup tool a user request needs, execute it, and shape the
// outcome into a text reply. One user turn is resolved start-to-finish
// before the next is accepted; at most one tool call and two model calls
// happen per turn. External failures never escape the loop — they become
// short user-visible messages and the agent is ready for the next turn.
package agent

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-assistant/internal/cache"
	"github.com/pdiddy/pubmed-assistant/internal/llm"
	"github.com/pdiddy/pubmed-assistant/internal/tools"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// toolCallPattern matches the model's tool invocation format,
// e.g. `Tool: search_papers_by_author("Jane Doe")`.
var toolCallPattern = regexp.MustCompile(`Tool:\s*(\w+)\("([^"]*)"\)`)

// pmidPattern matches a bare PubMed identifier in user text.
var pmidPattern = regexp.MustCompile(`\b(\d{7,9})\b`)

// detailIntentWords signal that a message carrying a PMID is asking for
// that paper's details, letting the agent skip the model call entirely.
var detailIntentWords = []string{"details", "paper id", "tell me about", "get"}

// moreIntentWords signal a follow-up asking for the next papers from the
// previous author search. Served from the cached identifier list, so no
// new PubMed search runs.
var moreIntentWords = []string{"show me more", "more papers", "more results"}

const morePrefix = "more papers by "

const fallbackReply = "I couldn't understand your request. Please try again with a clearer query."

// Agent resolves natural-language queries against the tool router,
// optionally consulting a language model to pick the tool. A nil provider
// puts the agent in direct mode.
type Agent struct {
	provider     llm.Provider
	router       *tools.Router
	results      *cache.Results
	history      []string
	historyTurns int
	detailCount  int

	// lastAuthor and shown track the most recent author search so a
	// follow-up can pick up where the reply left off.
	lastAuthor string
	shown      int
}

// New returns an Agent. results must be the same cache the router's author
// search writes to. detailCount controls how many papers from an author
// search are expanded with details in the reply (default 3);
// cfg.HistoryTurns controls how much recent conversation the decision
// prompt carries (default 3).
func New(provider llm.Provider, router *tools.Router, results *cache.Results, cfg types.LLMConfig, detailCount int) *Agent {
	historyTurns := cfg.HistoryTurns
	if historyTurns <= 0 {
		historyTurns = 3
	}
	if detailCount <= 0 {
		detailCount = 3
	}
	return &Agent{
		provider:     provider,
		router:       router,
		results:      results,
		historyTurns: historyTurns,
		detailCount:  detailCount,
	}
}

// Respond processes one user turn and returns the reply text. It never
// returns an error: every failure below this point is rendered as a short
// message so the surrounding console loop cannot crash.
func (a *Agent) Respond(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return "Please enter a question."
	}
	a.remember("User: " + input)

	// Explicit paper-ID requests skip the model.
	if id := detailRequestID(input); id != "" {
		return a.callTool(ctx, tools.NamePaperDetails, id)
	}

	// Follow-ups reuse the cached identifier list instead of re-searching.
	if author, ok := a.moreRequest(input); ok {
		if reply := a.moreDetails(ctx, author); reply != "" {
			return reply
		}
	}

	if a.provider == nil {
		return a.direct(ctx, input)
	}

	decision, err := a.provider.Complete(ctx, a.decisionPrompt(input))
	if err != nil {
		a.remember("Model Error: " + err.Error())
		return "The language model is unavailable right now. Please try again later."
	}
	decision = strings.TrimSpace(decision)

	if rest, ok := strings.CutPrefix(decision, "Direct:"); ok {
		reply := strings.TrimSpace(rest)
		a.remember("Agent: " + truncate(reply, 200))
		return reply
	}

	name, arg, ok := parseToolCall(decision)
	if !ok {
		return fallbackReply
	}
	return a.callTool(ctx, name, arg)
}

// callTool executes one router call and formats the outcome. Errors are
// converted to user-facing text here, so nothing past this boundary
// propagates a failure.
func (a *Agent) callTool(ctx context.Context, name, arg string) string {
	res, err := a.router.Call(ctx, name, arg)
	if err != nil {
		msg := toolErrorMessage(err)
		a.remember("Tool Error: " + msg)
		return msg
	}
	a.remember(fmt.Sprintf("Tool: %s, Result: %s", name, truncate(res.Text, 200)))

	if name == tools.NameSearchByAuthor && len(res.PaperIDs) > 0 {
		a.lastAuthor = res.Author
		a.shown = len(res.PaperIDs)
		if a.shown > a.detailCount {
			a.shown = a.detailCount
		}
		return formatAuthorSearch(res, a.fetchTopDetails(ctx, res.PaperIDs))
	}
	if res.Paper != nil {
		return FormatPaper(*res.Paper)
	}
	return res.Text
}

// fetchTopDetails expands the first detailCount identifiers from an author
// search. Individual fetch failures just shorten the detail list.
func (a *Agent) fetchTopDetails(ctx context.Context, ids []string) []types.Paper {
	if len(ids) > a.detailCount {
		ids = ids[:a.detailCount]
	}
	var papers []types.Paper
	for _, id := range ids {
		res, err := a.router.Call(ctx, tools.NamePaperDetails, id)
		if err != nil || res.Paper == nil {
			continue
		}
		papers = append(papers, *res.Paper)
	}
	return papers
}

// moreRequest reports whether input asks for more results from an earlier
// author search, and which author it refers to. "more papers by <name>"
// names the author explicitly; a bare "show me more" refers to the most
// recent author search.
func (a *Agent) moreRequest(input string) (string, bool) {
	lower := strings.ToLower(input)
	if i := strings.Index(lower, morePrefix); i >= 0 {
		name := tools.NormalizeAuthor(strings.TrimRight(strings.TrimSpace(input[i+len(morePrefix):]), ".?!"))
		if name != "" {
			return name, true
		}
	}
	for _, w := range moreIntentWords {
		if strings.Contains(lower, w) {
			return a.lastAuthor, a.lastAuthor != ""
		}
	}
	return "", false
}

// moreDetails serves a follow-up from the cached identifier list, expanding
// the next batch of papers after the ones already shown. It returns ""
// when nothing is cached for the author, so the normal decision flow can
// handle the request as a fresh search.
func (a *Agent) moreDetails(ctx context.Context, author string) string {
	if a.results == nil {
		return ""
	}
	ids := a.results.Recall(author)
	if ids == nil {
		return ""
	}
	if author != a.lastAuthor {
		a.lastAuthor, a.shown = author, 0
	}
	if a.shown >= len(ids) {
		return fmt.Sprintf("No more cached papers for %s. Try a new search.", author)
	}

	batch := ids[a.shown:]
	if len(batch) > a.detailCount {
		batch = batch[:a.detailCount]
	}
	start := a.shown
	a.shown += len(batch)
	a.remember(fmt.Sprintf("Cache: %d more paper(s) for %s", len(batch), author))

	details := a.fetchTopDetails(ctx, batch)
	if len(details) == 0 {
		return fmt.Sprintf("More paper IDs for %s: %s", author, strings.Join(batch, ", "))
	}
	return formatMoreResults(author, start, details)
}

// direct answers without a language model: a quoted string is treated as a
// title, "... by <name>" as an author search. Anything else gets a usage
// hint. The PMID fast path has already run by the time this is called.
func (a *Agent) direct(ctx context.Context, input string) string {
	if title := quotedText(input); title != "" {
		return a.callTool(ctx, tools.NameSearchByTitle, title)
	}
	if i := strings.LastIndex(strings.ToLower(input), " by "); i >= 0 {
		author := strings.TrimRight(strings.TrimSpace(input[i+4:]), ".?!")
		if author != "" {
			return a.callTool(ctx, tools.NameSearchByAuthor, author)
		}
	}
	return `No language model is configured. Try "papers by <author>", a quoted paper title, or a numeric paper ID.`
}

// decisionPrompt builds the tool-selection prompt from the router's
// declared schemas plus recent conversation.
func (a *Agent) decisionPrompt(input string) string {
	var b strings.Builder
	b.WriteString("Based on the user's request, decide which tool to use.\n\nAvailable tools:\n")
	for _, t := range a.router.Tools() {
		fmt.Fprintf(&b, "- %s(%q) - %s\n", t.Name(), t.ArgName(), t.Description())
	}

	fmt.Fprintf(&b, "\nUser request: %s\n", input)

	if recent := a.recentHistory(); len(recent) > 0 {
		b.WriteString("\nRecent conversation:\n")
		b.WriteString(strings.Join(recent, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with EXACTLY ONE of these formats:\n")
	b.WriteString("1. To call a tool: Tool: tool_name(\"argument\")\n")
	b.WriteString("2. To answer without tools: Direct: [your answer]\n")
	b.WriteString("\nYour response:")
	return b.String()
}

func (a *Agent) recentHistory() []string {
	if len(a.history) <= 1 {
		return nil
	}
	// Exclude the line just appended for the current turn.
	prior := a.history[:len(a.history)-1]
	if len(prior) > a.historyTurns {
		prior = prior[len(prior)-a.historyTurns:]
	}
	return prior
}

func (a *Agent) remember(line string) {
	a.history = append(a.history, line)
}

// parseToolCall extracts the tool name and argument from the model's
// reply. ok is false when the reply matches neither response format.
func parseToolCall(reply string) (name, arg string, ok bool) {
	m := toolCallPattern.FindStringSubmatch(reply)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// detailRequestID returns the PMID when input is an explicit details
// request, or "" otherwise.
func detailRequestID(input string) string {
	m := pmidPattern.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	lower := strings.ToLower(input)
	for _, w := range detailIntentWords {
		if strings.Contains(lower, w) {
			return m[1]
		}
	}
	return ""
}

// quotedText returns the first text between double quotes, or between a
// pair of single quotes whose opening quote starts a word. Apostrophes
// inside words ("Jane's") never open a quote.
func quotedText(input string) string {
	if start := strings.Index(input, `"`); start >= 0 {
		if end := strings.Index(input[start+1:], `"`); end > 0 {
			return input[start+1 : start+1+end]
		}
	}
	for i := 0; i < len(input); i++ {
		if input[i] != '\'' {
			continue
		}
		if i > 0 && input[i-1] != ' ' {
			continue
		}
		if end := strings.Index(input[i+1:], "'"); end > 0 {
			return input[i+1 : i+1+end]
		}
	}
	return ""
}

func toolErrorMessage(err error) string {
	if errors.Is(err, tools.ErrUnrecognizedTool) {
		return "I tried to use a lookup that doesn't exist. Please rephrase your request."
	}
	return "Sorry, the lookup failed: " + err.Error()
}
