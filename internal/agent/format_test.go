// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/pubmed-assistant/internal/tools"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

func TestFormatPaperFullRecord(t *testing.T) {
	p := types.Paper{
		ID:       "37635766",
		Title:    "Cavity architecture",
		Authors:  []string{"Jane Doe", "John Smith"},
		Journal:  "Journal of Molecular Biology",
		Year:     "2023",
		DOI:      "10.1016/j.jmb.2023.168190",
		Abstract: "BACKGROUND: Cavities vary.",
	}

	out := FormatPaper(p)
	assert.Contains(t, out, "Paper ID: 37635766")
	assert.Contains(t, out, "Title: Cavity architecture")
	assert.Contains(t, out, "Authors: Jane Doe, John Smith")
	assert.Contains(t, out, "Journal: Journal of Molecular Biology (2023)")
	assert.Contains(t, out, "DOI: 10.1016")
	assert.Contains(t, out, "Abstract:\nBACKGROUND: Cavities vary.")
}

func TestFormatPaperOmitsAbsentFields(t *testing.T) {
	out := FormatPaper(types.Paper{ID: "111"})

	assert.Contains(t, out, "Paper ID: 111")
	assert.NotContains(t, out, "Title:")
	assert.NotContains(t, out, "Authors:")
	assert.NotContains(t, out, "Journal:")
	assert.NotContains(t, out, "Year:")
	assert.NotContains(t, out, "DOI:")
	assert.NotContains(t, out, "Abstract:")
}

func TestFormatPaperYearWithoutJournal(t *testing.T) {
	out := FormatPaper(types.Paper{ID: "111", Year: "2020"})
	assert.Contains(t, out, "Year: 2020")
	assert.NotContains(t, out, "Journal:")
}

func TestFormatAuthorSearchWithDetails(t *testing.T) {
	res := tools.Result{
		Text:     "Found 2 papers by Jane Doe. Paper IDs: 111, 222",
		PaperIDs: []string{"111", "222"},
		Count:    2,
	}
	details := []types.Paper{{ID: "111", Title: "First"}, {ID: "222", Title: "Second"}}

	out := formatAuthorSearch(res, details)
	assert.True(t, strings.HasPrefix(out, "Found 2 papers by Jane Doe"))
	assert.Contains(t, out, "Details for the first 2 paper(s):")
	assert.Contains(t, out, "--- Paper 1 ---")
	assert.Contains(t, out, "Title: First")
	assert.Contains(t, out, "--- Paper 2 ---")
	assert.Contains(t, out, "Title: Second")
}

func TestFormatAuthorSearchWithoutDetails(t *testing.T) {
	res := tools.Result{Text: "Found 0 papers by Nobody."}
	assert.Equal(t, "Found 0 papers by Nobody.", formatAuthorSearch(res, nil))
}
