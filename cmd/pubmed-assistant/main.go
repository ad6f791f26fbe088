// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-assistant CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-assistant/internal/agent"
	"github.com/pdiddy/pubmed-assistant/internal/cache"
	"github.com/pdiddy/pubmed-assistant/internal/llm"
	"github.com/pdiddy/pubmed-assistant/internal/pubmed"
	"github.com/pdiddy/pubmed-assistant/internal/secrets"
	"github.com/pdiddy/pubmed-assistant/internal/tools"
	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the pubmed-assistant CLI.
var rootCmd = &cobra.Command{
	Use:   "pubmed-assistant",
	Short: "Natural-language assistant for searching PubMed",
	Long: `pubmed-assistant answers natural-language questions about biomedical
literature by routing them through PubMed's E-utilities API. A language
model decides which lookup to run (search by author, search by title, or
fetch a paper by PMID); without an API key the assistant falls back to
simple phrasing heuristics.

Use ask for a single question, chat for an interactive session, or the
search and paper subcommands to query PubMed directly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubmed-assistant.yaml or ~/.config/pubmed-assistant/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-assistant")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-assistant"))
		}
	}

	viper.SetEnvPrefix("PUBMED_ASSISTANT")
	viper.AutomaticEnv()

	viper.SetDefault("pubmed.timeout", 10*time.Second)
	viper.SetDefault("pubmed.max_results", 20)
	viper.SetDefault("pubmed.detail_count", 3)
	viper.SetDefault("pubmed.request_interval", 334*time.Millisecond)
	viper.SetDefault("llm.model", "llama3-70b-8192")
	viper.SetDefault("llm.history_turns", 3)
	viper.SetDefault("cache.capacity", 64)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the assistant configuration from viper, with API
// keys resolved from flags/config, .secrets/, and the environment.
func loadConfig() types.AssistantConfig {
	return types.AssistantConfig{
		PubMed: types.PubMedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("pubmed.timeout"),
				UserAgent: viper.GetString("pubmed.user_agent"),
			},
			MaxResults:      viper.GetInt("pubmed.max_results"),
			DetailCount:     viper.GetInt("pubmed.detail_count"),
			APIKey:          secrets.Resolve(loadedSecrets, viper.GetString("pubmed.api_key"), "ncbi-api-key", "NCBI_API_KEY"),
			RequestInterval: viper.GetDuration("pubmed.request_interval"),
		},
		LLM: types.LLMConfig{
			Model:        viper.GetString("llm.model"),
			APIKey:       secrets.Resolve(loadedSecrets, viper.GetString("llm.api_key"), "groq-api-key", "GROQ_API_KEY"),
			HistoryTurns: viper.GetInt("llm.history_turns"),
		},
		Cache: types.CacheConfig{
			Capacity: viper.GetInt("cache.capacity"),
		},
	}
}

// buildAgent wires the PubMed client, result cache, tool router, and
// language model provider into a ready-to-use agent.
func buildAgent(cfg types.AssistantConfig) *agent.Agent {
	client := pubmed.NewClient(cfg.PubMed)
	results := cache.NewResults(cfg.Cache.Capacity)
	router := tools.NewRouter(client, results, cfg.PubMed.MaxResults)

	var provider llm.Provider
	if cfg.LLM.APIKey != "" {
		provider = llm.NewGroqProvider(cfg.LLM)
	} else {
		fmt.Fprintln(os.Stderr, "No LLM API key configured; running in direct mode.")
	}

	return agent.New(provider, router, results, cfg.LLM, cfg.PubMed.DetailCount)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
