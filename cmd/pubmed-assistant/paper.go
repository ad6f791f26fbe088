// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-assistant/internal/agent"
	"github.com/pdiddy/pubmed-assistant/internal/pubmed"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

var paperCmd = &cobra.Command{
	Use:   "paper [pmid]",
	Short: "Fetch one paper record from PubMed",
	Long: `Paper fetches the full record for a single paper, including its abstract
when PubMed provides one. Pass a numeric PMID as an argument, or use
--title to look the paper up by title instead.`,
	RunE: runPaper,
}

func runPaper(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := pubmed.NewClient(cfg.PubMed)
	ctx := context.Background()

	title, _ := cmd.Flags().GetString("title")

	var paper *types.Paper
	switch {
	case title != "":
		p, err := client.SearchTitle(ctx, title)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("no paper found with title %q", title)
		}
		paper = p
	case len(args) == 1:
		papers, err := client.FetchDetails(ctx, args[:1])
		if err != nil {
			return err
		}
		if len(papers) == 0 {
			return fmt.Errorf("no article found for ID %s", args[0])
		}
		paper = &papers[0]
	default:
		return fmt.Errorf("provide a PMID argument or --title")
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(paper)
	}
	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(paper)
	}

	fmt.Println(agent.FormatPaper(*paper))
	return nil
}

func init() {
	paperCmd.Flags().String("title", "", "look the paper up by title instead of PMID")
	paperCmd.Flags().Bool("json", false, "output the record as JSON")
	paperCmd.Flags().Bool("yaml", false, "output the record as YAML")

	rootCmd.AddCommand(paperCmd)
}
