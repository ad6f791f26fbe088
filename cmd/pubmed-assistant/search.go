// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-assistant/internal/agent"
	"github.com/pdiddy/pubmed-assistant/internal/pubmed"
	"github.com/pdiddy/pubmed-assistant/internal/tools"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [author]",
	Short: "Search PubMed for papers by an author",
	Long: `Search queries PubMed for papers written by the given author. Honorifics
such as "Dr." and "Prof." are stripped from the name before searching.
With --details, full records for the top results are fetched and printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

// searchOutput is the structured form of an author search, used for
// --json and --yaml output.
type searchOutput struct {
	Author   string        `json:"author" yaml:"author"`
	Count    int           `json:"count" yaml:"count"`
	PaperIDs []string      `json:"paper_ids" yaml:"paper_ids"`
	Papers   []types.Paper `json:"papers,omitempty" yaml:"papers,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if max, _ := cmd.Flags().GetInt("max-results"); max > 0 {
		cfg.PubMed.MaxResults = max
	}

	client := pubmed.NewClient(cfg.PubMed)
	ctx := context.Background()

	author := tools.NormalizeAuthor(strings.Join(args, " "))
	if author == "" {
		return fmt.Errorf("author name required")
	}

	ids, count, err := client.SearchAuthor(ctx, author, cfg.PubMed.MaxResults)
	if err != nil {
		return err
	}

	out := searchOutput{Author: author, Count: count, PaperIDs: ids}

	if details, _ := cmd.Flags().GetBool("details"); details && len(ids) > 0 {
		n := cfg.PubMed.DetailCount
		if n > len(ids) {
			n = len(ids)
		}
		papers, err := client.FetchDetails(ctx, ids[:n])
		if err != nil {
			return err
		}
		out.Papers = papers
	}

	return writeSearchOutput(cmd, out)
}

func writeSearchOutput(cmd *cobra.Command, out searchOutput) error {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(out)
	}

	fmt.Printf("Found %d papers by %s.\n", out.Count, out.Author)
	if len(out.PaperIDs) > 0 {
		fmt.Printf("Paper IDs: %s\n", strings.Join(out.PaperIDs, ", "))
	}
	for _, p := range out.Papers {
		fmt.Println()
		fmt.Println(agent.FormatPaper(p))
	}
	return nil
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of results to return")
	searchCmd.Flags().Bool("details", false, "fetch full records for the top results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")

	rootCmd.AddCommand(searchCmd)
}
