// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question about biomedical literature",
	Long: `Ask runs one question through the assistant and prints the answer.
The question is routed to a PubMed lookup (author search, title search,
or PMID fetch) when the language model decides one applies, otherwise
answered directly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	a := buildAgent(loadConfig())
	question := strings.Join(args, " ")

	fmt.Println(a.Respond(context.Background(), question))
	return nil
}

func init() {
	rootCmd.AddCommand(askCmd)
}
