// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive session with the assistant",
	Long: `Chat starts a read-eval-print loop. Each line is answered in turn and
recent turns are carried as conversation context. Type quit, exit, or
bye (or press Ctrl-D) to leave.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	a := buildAgent(loadConfig())

	rl, err := readline.New("you> ")
	if err != nil {
		return fmt.Errorf("starting interactive session: %w", err)
	}
	defer rl.Close()

	fmt.Println("PubMed assistant ready. Ask about papers, authors, or paper IDs.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			fmt.Println("Goodbye.")
			return nil
		}

		fmt.Println(a.Respond(context.Background(), input))
	}

	fmt.Println("Goodbye.")
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
